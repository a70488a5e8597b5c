package main

// soundkeep is a batch utility for maintaining a local audio collection:
// verifying file integrity with ffmpeg, analyzing stream metadata with
// ffprobe, and toggling cover-art visibility.

func main() {
	Execute()
}
