package content

import (
	"embed"
	"io/fs"
)

//go:embed posts
var postsFS embed.FS

// PostsFS returns the embedded post bundle rooted at the posts directory,
// so document names are bare filenames like "hello-world.md".
func PostsFS() fs.FS {
	sub, err := fs.Sub(postsFS, "posts")
	if err != nil {
		// The posts directory is part of the binary; a failure here is a
		// build defect, not a runtime condition.
		panic(err)
	}

	return sub
}
