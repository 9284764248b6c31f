package phrase_test

import (
	"fmt"

	"github.com/matzehuels/kalamapona/pkg/phrase"
)

func ExampleParse() {
	p := phrase.Parse("jan sewi Amatelasu")
	fmt.Println("Words:", p.Words)
	fmt.Println("Name:", p.Name)
	// Output:
	// Words: [jan sewi]
	// Name: Amatelasu
}

func ExampleMatchCompounds() {
	compounds := phrase.NewCompoundSet("jan-sewi")
	fmt.Println(phrase.MatchCompounds([]string{"jan", "sewi", "pona"}, compounds))
	// Output: [jan-sewi pona]
}

func ExampleAlphabet_Syllables() {
	a := phrase.DefaultAlphabet()
	syllables := a.Syllables("Isukusima")
	fmt.Println(syllables)
	fmt.Println(a.AssetKeys(syllables))
	// Output:
	// [i su ku si ma]
	// [xi su ku si ma]
}
