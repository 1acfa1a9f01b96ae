// Package corpus assembles study guides into a browsable collection.
//
// A Corpus is an ordered, slug-keyed set of validated guides. The package
// also ships Builtin, the collection of documents this project exists to
// publish: the React situational questions, the JavaScript question bank,
// the HR round, the full-stack Next.js guide, and two long-form essays.
//
// Cross-guide queries (by topic, by difficulty) live here rather than in
// the guide package because they only make sense over a collection.
package corpus
