package fstree

// Node is one entry in a scanned tree: either a *File or a *Dir.
// Nodes are immutable after construction; renderers only read them.
type Node interface {
	// Name is the entry's base name, without any path separators.
	Name() string
	// Size is the entry's size in bytes, never negative.
	Size() int64

	sealed()
}

// File is a leaf entry with the size reported by its own stat.
type File struct {
	name string
	size int64
}

// NewFile creates a file node.
func NewFile(name string, size int64) *File {
	return &File{name: name, size: size}
}

// Name returns the file's base name.
func (f *File) Name() string { return f.name }

// Size returns the file's size in bytes.
func (f *File) Size() int64 { return f.size }

func (f *File) sealed() {}

// Dir is a directory entry. Its size is the sum of its children's sizes
// plus the link sizes of any symlinks directly inside it; symlinks never
// become nodes. Children keep construction order.
type Dir struct {
	name     string
	size     int64
	children []Node
}

// NewDir creates a directory node. The caller is responsible for size
// accounting; unreadable or opaque directories pass size 0 and no
// children.
func NewDir(name string, size int64, children []Node) *Dir {
	return &Dir{name: name, size: size, children: children}
}

// Name returns the directory's base name.
func (d *Dir) Name() string { return d.name }

// Size returns the directory's cumulative size in bytes.
func (d *Dir) Size() int64 { return d.size }

// Children returns the directory's immediate children in construction
// order.
func (d *Dir) Children() []Node { return d.children }

func (d *Dir) sealed() {}
