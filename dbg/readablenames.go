package dbg

import (
	"fmt"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// This converts arbitrary comparable keys into readable names, such as
// "BraveOtter". Names are handed out lazily and memoized, so the same key gets
// the same name for the life of the process. The memo is never cleared, which
// is fine for a batch of shapes but not for a long running service.

var (
	mu    sync.Mutex
	memo  = make(map[interface{}]string)
	taken = make(map[string]struct{})
	title = cases.Title(language.English)
)

func init() {
	// Names are generated in order of demand, so make them nondeterministic to
	// remind the user that a name doesn't identify the same thing between runs.
	petname.NonDeterministicMode()
}

// Name for key, which must be comparable. A nil key is "Ø".
func Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fresh()
	memo[key] = r
	taken[r] = struct{}{}
	return r
}

// Petnames repeat quickly, so collisions get a numeric suffix.
func fresh() string {
	base := title.String(petname.Adjective()) + title.String(petname.Name())
	r := base
	for i := 2; ; i++ {
		if _, ok := taken[r]; !ok {
			return r
		}
		r = fmt.Sprintf("%s%d", base, i)
	}
}
