// Package logtail reads line-oriented files the way tail -f does.
//
// Read extracts the last N lines of a file in one pass using a ring buffer,
// so memory stays proportional to N rather than to the file size. Follow
// does the same for the initial backlog and returns a Follower that hands
// out newly appended lines on each Poll.
//
// Example usage:
//
//	f, backlog, err := logtail.Follow("/tmp/eqa/display.jsonl", 200)
//	if err != nil {
//		return err
//	}
//	for _, line := range backlog {
//		handle(line)
//	}
//	lines, err := f.Poll()
//
// # Partial lines
//
// A write may land in the middle of a line. The Follower keeps the
// unterminated tail and only returns it once its newline arrives.
//
// # Rotation
//
// When the file is smaller than the consumed offset it has been truncated or
// replaced; the Follower starts again from the beginning.
//
// # Error Handling
//
// A missing file is not an error: Read returns no lines and Poll returns no
// lines until the file appears. Other errors (permission denied, I/O
// errors) are returned wrapped.
package logtail
