// Package ffmpeg shells out to ffmpeg/ffprobe for the work the clip finder
// deliberately does not do itself: probing media containers, demuxing
// embedded subtitle streams to SRT, and cutting clips.
package ffmpeg
