package authorship

// ReferenceCatalog returns a new catalog with precomputed signatures of four
// novels by Arthur Conan Doyle, Charles Dickens, Jane Austen and Mark Twain.
func ReferenceCatalog() *Catalog {
	c, err := NewCatalog(
		Entry{"Arthur_Conan_Doyle.txt", Signature{4.3745884086670195, 0.1547122890234636, 0.09005503235165442, 15.488028169014084, 2.082394366197183}},
		Entry{"charles_dickens.txt", Signature{4.229579999566339, 0.0796743207788547, 0.041821158307855766, 17.283525611444393, 2.698477157360406}},
		Entry{"jane_austen.txt", Signature{4.492473405509028, 0.06848572461149259, 0.03249477538065084, 17.4903453902638, 2.607560511286375}},
		Entry{"mark_twain.txt", Signature{4.372851190055795, 0.1350377851543188, 0.07780210466840878, 14.39117412140575, 2.16194089456869}},
	)
	if err != nil {
		panic(err)
	}
	return c
}
