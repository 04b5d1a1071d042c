package widget

// Document holds the text content of an editable-text component. Offsets
// and lengths are measured in runes.
type Document struct {
	text      []rune
	listeners listeners[DocumentListener]
}

// Text returns the full content.
func (d *Document) Text() string { return string(d.text) }

// Len returns the content length in runes.
func (d *Document) Len() int { return len(d.text) }

// AddDocumentListener attaches l.
func (d *Document) AddDocumentListener(l DocumentListener) { d.listeners.add(l) }

// RemoveDocumentListener detaches l.
func (d *Document) RemoveDocumentListener(l DocumentListener) { d.listeners.remove(l) }

// DocumentListenerCount returns the number of attached listeners.
func (d *Document) DocumentListenerCount() int { return d.listeners.len() }

// Insert inserts s at offset, clamped to the document bounds.
func (d *Document) Insert(offset int, s string) {
	if s == "" {
		return
	}
	offset = clamp(offset, 0, len(d.text))
	r := []rune(s)
	out := make([]rune, 0, len(d.text)+len(r))
	out = append(out, d.text[:offset]...)
	out = append(out, r...)
	out = append(out, d.text[offset:]...)
	d.text = out
	d.fire(DocumentEvent{Document: d, Type: DocumentInsert, Offset: offset, Length: len(r)})
}

// Remove deletes length runes starting at offset, clamped to the document bounds.
func (d *Document) Remove(offset, length int) {
	offset = clamp(offset, 0, len(d.text))
	end := clamp(offset+length, offset, len(d.text))
	if end == offset {
		return
	}
	d.text = append(d.text[:offset:offset], d.text[end:]...)
	d.fire(DocumentEvent{Document: d, Type: DocumentRemove, Offset: offset, Length: end - offset})
}

// Replace removes length runes at offset and inserts s in their place.
func (d *Document) Replace(offset, length int, s string) {
	d.Remove(offset, length)
	d.Insert(offset, s)
}

func (d *Document) fire(e DocumentEvent) {
	for _, l := range d.listeners.snapshot() {
		switch e.Type {
		case DocumentInsert:
			l.InsertUpdate(e)
		case DocumentRemove:
			l.RemoveUpdate(e)
		default:
			l.ChangedUpdate(e)
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
