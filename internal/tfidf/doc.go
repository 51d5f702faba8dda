// Package tfidf implements the lexical indexing core: tokenisation,
// vocabulary and inverse-document-frequency construction, sparse TF-IDF
// vectors, and cosine-similarity ranking.
//
// The numeric behaviour is fixed: raw term counts weighted by smoothed IDF
// (ln((1+P)/(1+df)) + 1), L2-normalised rows, and descending-score ranking
// with ties broken by row insertion order. Changing any of these changes
// observable retrieval results.
package tfidf
