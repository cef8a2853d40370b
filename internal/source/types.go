package source

type (
	// FileID uniquely identifies a source buffer within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source buffer.
	FileFlags uint8
)

const (
	// FileVirtual indicates the buffer was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
)

// File captures the path and raw content of a single unit file.
// Content is never normalized: the flattener copies it back byte-for-byte.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
