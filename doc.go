// Package authorship guesses who wrote a text by comparing stylistic signatures.
//
// A signature is five numbers computed from a text: average word length,
// type-token ratio, hapax ratio, average sentence length and average sentence
// complexity. Signatures of known authors are kept in a Catalog, and an unknown
// text is attributed to the catalog entry with the lowest weighted distance:
//
//	sig, err := authorship.Compute(text)
//	if err != nil {
//		return err
//	}
//	name, err := authorship.BestMatch(authorship.ReferenceCatalog(), sig, authorship.DefaultWeights())
package authorship
