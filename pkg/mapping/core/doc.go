// Package core provides the logical tree model used by path2map along with the
// directory traversal that produces flat entry lists and the builder that
// assembles those entries into a tree. It does not provide ignore handling,
// filtering, or rendering, which are instead provided by the ignore, filter,
// and render packages, respectively.
package core
