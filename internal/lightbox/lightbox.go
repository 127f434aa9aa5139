// Package lightbox tracks the full-screen image viewer used for project
// screenshots.
package lightbox

import "sync"

type Image struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	GroupID string `json:"groupId,omitempty"`
}

// Lightbox is one viewer's state. The zero value is closed and empty.
type Lightbox struct {
	mu      sync.RWMutex
	open    bool
	index   int
	images  []Image
	groupID string
}

// Open shows images starting at index. An index outside the list starts at
// the first image.
func (l *Lightbox) Open(images []Image, index int, groupID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.images = append([]Image(nil), images...)
	if index < 0 || index >= len(images) {
		index = 0
	}
	l.index = index
	l.groupID = groupID
	l.open = true
}

// Close hides the viewer. The image list is kept so reopening can resume.
func (l *Lightbox) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.open = false
	l.groupID = ""
}

func (l *Lightbox) IsOpen() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.open
}

func (l *Lightbox) GroupID() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.groupID
}

func (l *Lightbox) Index() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index
}

// Current returns the image on display.
func (l *Lightbox) Current() (Image, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.index >= len(l.images) {
		return Image{}, false
	}
	return l.images[l.index], true
}

func (l *Lightbox) HasNext() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index < len(l.images)-1
}

func (l *Lightbox) HasPrev() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index > 0
}

// Next advances one image, stopping at the last.
func (l *Lightbox) Next() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.index < len(l.images)-1 {
		l.index++
	}
}

// Prev goes back one image, stopping at the first.
func (l *Lightbox) Prev() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.index > 0 {
		l.index--
	}
}

// GoTo jumps to index; out of range indexes are ignored.
func (l *Lightbox) GoTo(index int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index >= 0 && index < len(l.images) {
		l.index = index
	}
}
