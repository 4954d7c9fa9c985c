// Package classifier attributes texts to authors whose signatures are kept in a Store.
package classifier

import (
	authorship "github.com/samuel/go-authorship"
)

// Classifier matches unknown texts against the signatures in its store
type Classifier struct {
	store Store

	Weights authorship.Weights
}

// NewClassifier returns a new Classifier using the default weights
func NewClassifier(store Store) (*Classifier, error) {
	return &Classifier{
		store:   store,
		Weights: authorship.DefaultWeights(),
	}, nil
}

// AddDocument computes the signature of text and stores it under name,
// replacing any signature already stored there.
func (c *Classifier) AddDocument(name, text string) error {
	sig, err := authorship.Compute(text)
	if err != nil {
		return err
	}
	return c.store.Put(name, sig)
}

// AddSignature stores a precomputed signature under name
func (c *Classifier) AddSignature(name string, sig authorship.Signature) error {
	return c.store.Put(name, sig)
}

// RemoveDocument forgets the signature stored under name
func (c *Classifier) RemoveDocument(name string) error {
	return c.store.Remove(name)
}

// Scores ranks every stored signature against text, closest first.
func (c *Classifier) Scores(text string) ([]authorship.Match, error) {
	sig, err := authorship.Compute(text)
	if err != nil {
		return nil, err
	}
	catalog, err := c.store.Catalog()
	if err != nil {
		return nil, err
	}
	return authorship.Rank(catalog, sig, c.Weights)
}

// Identify returns the name whose stored signature is closest to the
// signature of text. Ties go to the name that was stored first.
func (c *Classifier) Identify(text string) (string, error) {
	sig, err := authorship.Compute(text)
	if err != nil {
		return "", err
	}
	catalog, err := c.store.Catalog()
	if err != nil {
		return "", err
	}
	return authorship.BestMatch(catalog, sig, c.Weights)
}
