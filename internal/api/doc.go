// Package api provides the read-only HTTP handlers over the content store:
// guide listing and lookup, category intros, and the sitemap. Handlers
// never mutate the store; a lookup miss maps to 404.
package api
