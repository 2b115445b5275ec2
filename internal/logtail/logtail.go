package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	lines, _, _, err := tail(path, maxLines)
	return lines, err
}

// tail returns the last maxLines complete lines, the byte offset reached and
// any trailing text not yet terminated by a newline.
func tail(path string, maxLines int) ([]string, int64, string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, "", nil
		}
		return nil, 0, "", fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var ring []string
	if maxLines > 0 {
		ring = make([]string, maxLines)
	}
	reader := bufio.NewReaderSize(file, 64*1024)
	var (
		offset  int64
		partial string
		all     []string
		count   int
		idx     int
	)
	for {
		line, err := reader.ReadString('\n')
		offset += int64(len(line))
		if err != nil {
			if errors.Is(err, io.EOF) {
				partial = line
				break
			}
			return nil, 0, "", fmt.Errorf("read log: %w", err)
		}
		line = trimEOL(line)
		if maxLines <= 0 {
			all = append(all, line)
			continue
		}
		ring[idx] = line
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if maxLines <= 0 {
		return all, offset, partial, nil
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, offset, partial, nil
}

// Follower hands out lines appended to a file since the previous call.
// It is not safe for concurrent use.
type Follower struct {
	path    string
	offset  int64
	partial string
}

// Follow opens a follower on path. It returns up to backlog existing lines
// and positions the follower after them.
func Follow(path string, backlog int) (*Follower, []string, error) {
	lines, offset, partial, err := tail(path, backlog)
	if err != nil {
		return nil, nil, err
	}
	return &Follower{path: path, offset: offset, partial: partial}, lines, nil
}

// Path returns the followed file.
func (f *Follower) Path() string {
	return f.path
}

// Offset returns the number of bytes consumed so far.
func (f *Follower) Offset() int64 {
	return f.offset
}

// Poll returns the complete lines written since the last call. A file that
// shrank is treated as rotated and read again from the start.
func (f *Follower) Poll() ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat log: %w", err)
	}
	size := info.Size()
	if size < f.offset {
		f.offset, f.partial = 0, ""
	}
	if size == f.offset {
		return nil, nil
	}
	if _, err := file.Seek(f.offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek log: %w", err)
	}
	data, err := io.ReadAll(io.LimitReader(file, size-f.offset))
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	f.offset += int64(len(data))

	chunk := f.partial + string(data)
	pieces := strings.Split(chunk, "\n")
	f.partial = pieces[len(pieces)-1]
	lines := pieces[:len(pieces)-1]
	for i, line := range lines {
		lines[i] = trimEOL(line)
	}
	return lines, nil
}

func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}
