// Package domain contains the core content entities of the knowledge base:
// guides, their section blocks, FAQs, calculator examples, and category
// intro blocks. It is independent of any delivery mechanism; the structural
// invariants of the content live here.
package domain
