// Package wordlist holds the curated word catalogs used to build memorable
// identifiers.
//
// Each List (Animals, Colours, Adjectives, ...) is backed by a line-delimited
// text resource embedded in the binary under lists/<Name>.txt. The whole
// catalog is read once per process on first use and shared read-only by every
// caller afterwards.
//
// # Usage
//
//	words := wordlist.Words(wordlist.Animals)
//
//	l, err := wordlist.Parse("colours") // case-insensitive, "colors" works too
//
// Callers that ship their own lists can serve them through NewFSProvider and
// verify them with Check:
//
//	p := wordlist.NewFSProvider(os.DirFS("./lists"))
//	words, err := p.Words(wordlist.Foods)
//	if err == nil {
//	    err = wordlist.Check(words)
//	}
//
// # Errors
//
// A missing resource surfaces as ErrResourceNotFound. For the embedded catalog
// this is a build defect, so MustLoad and Words panic instead of returning it.
package wordlist
