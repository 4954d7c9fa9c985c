package authorship

import "fmt"

// Positions of the features within a Signature.
const (
	FeatureWordLength = iota
	FeatureTypeToken
	FeatureHapax
	FeatureSentenceLength
	FeatureSentenceComplexity

	NumFeatures
)

// FeatureNames holds a short label for each Signature position.
var FeatureNames = [NumFeatures]string{
	"word length",
	"type-token ratio",
	"hapax ratio",
	"sentence length",
	"sentence complexity",
}

// Signature is the stylistic fingerprint of a text.
type Signature [NumFeatures]float64

func (s Signature) String() string {
	return fmt.Sprintf("[%g %g %g %g %g]", s[0], s[1], s[2], s[3], s[4])
}

// Compute returns the signature of text. It fails with ErrEmptyInput when
// text has no words.
func Compute(text string) (Signature, error) {
	var sig Signature
	words := Words(text)
	sentences := Sentences(text)

	calcs := [NumFeatures]func() (float64, error){
		FeatureWordLength:         func() (float64, error) { return averageWordLength(words) },
		FeatureTypeToken:          func() (float64, error) { return typeTokenRatio(words) },
		FeatureHapax:              func() (float64, error) { return hapaxRatio(words) },
		FeatureSentenceLength:     func() (float64, error) { return averageSentenceLength(sentences) },
		FeatureSentenceComplexity: func() (float64, error) { return averageSentenceComplexity(sentences) },
	}
	for i, calc := range calcs {
		v, err := calc()
		if err != nil {
			return Signature{}, err
		}
		sig[i] = v
	}
	return sig, nil
}
