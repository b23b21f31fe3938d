// Package content holds the authored corpus: every guide document and the
// category intro blocks, as Go literals compiled into the build. There is
// no loader and no persistence; editing content means editing this package
// and shipping a new build. The accessors hand the literals to store.New,
// which is where structural validation happens.
package content
