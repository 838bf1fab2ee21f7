// Command gen regenerates the fixed-arity tuple query family (Tuple2..Tuple16
// in the root loom package, Pair2..Pair16 in loom/query) from one template,
// since Go has no variadic generics to express a single TupleN type. Invoke
// it via `go generate ./...` from the module root — see the go:generate
// directive atop ../../query_tuple.go. Re-running it rewrites
// query_tuple.go and query/tuple.go from the arity bound below, gofmt'd;
// the committed copies are not byte-identical to its output (their comments
// and layout differ). The two files are committed rather than built on every `go build`
// so the generator itself stays a dev-time tool, not a build dependency.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

// minArity/maxArity mirror SPEC_FULL.md's stated tuple bound (its §5
// "Non-goals" references DESIGN.md for this file; the bound itself is
// spec.md §4.4's "queries compose up to 16 components"). Extending maxArity
// requires updating that bound in SPEC_FULL.md too — see query_tuple.go's
// header comment.
const (
	minArity = 2
	maxArity = 16
)

type arity struct {
	N     int
	Nums  []int // 1..N, for range iteration in templates
	Types string // "T1, T2, T3"
}

func newArity(n int) arity {
	nums := make([]int, n)
	types := make([]string, n)
	for i := 0; i < n; i++ {
		nums[i] = i + 1
		types[i] = fmt.Sprintf("T%d", i+1)
	}
	return arity{N: n, Nums: nums, Types: strings.Join(types, ", ")}
}

var pairTemplate = template.Must(template.New("pair").Parse(`
// Pair{{.N}} is the result of a {{.N}}-way tuple query.
type Pair{{.N}}[{{.Types}} any] struct {
{{- range .Nums}}
	V{{.}} T{{.}}
{{- end}}
}
`))

var tupleTemplate = template.Must(template.New("tuple").Funcs(template.FuncMap{"reverse": reverse}).Parse(`
// Tuple{{.N}} composes {{.N}} fetchers into one query over the guid list their
// combined mask selects.
type Tuple{{.N}}[{{.Types}} any] struct {
{{- range .Nums}}
	q{{.}} fetcher[T{{.}}]
{{- end}}
}

// NewTuple{{.N}} composes the given fetchers. Each must come from a distinct
// component type; composing Write[T] with itself (or with another
// parallel system's Write[T]) is a caller error per spec.md §5.
func NewTuple{{.N}}[{{.Types}} any]({{range $i, $n := .Nums}}{{if $i}}, {{end}}q{{$n}} fetcher[T{{$n}}]{{end}}) Tuple{{.N}}[{{.Types}}] {
	return Tuple{{.N}}[{{.Types}}]{ {{- range $i, $n := .Nums}}{{if $i}}, {{end}}q{{$n}}{{end}} }
}

// Each resolves {{.N}}'s combined guid list and yields (Entity, Pair{{.N}}) for
// each match, holding every child's storage lock for the walk's lifetime.
func (t Tuple{{.N}}[{{.Types}}]) Each(w *World) func(yield func(Entity, query.Pair{{.N}}[{{.Types}}]) bool) {
	return func(yield func(Entity, query.Pair{{.N}}[{{.Types}}]) bool) {
		m := combineAll({{range $i, $n := .Nums}}{{if $i}}, {{end}}t.q{{$n}}.queryMask(w){{end}})

		var ordered []orderedFetcher
		{{- range .Nums}}
		if of, ok := any(t.q{{.}}).(orderedFetcher); ok {
			ordered = append(ordered, of)
		}
		{{- end}}
		ids := resolveIDs(w, m, ordered)

		{{range .Nums}}u{{.}} := t.q{{.}}.lock(w)
		{{end -}}
		defer func() {
			{{- range .Nums | reverse}}
			u{{.}}()
			{{- end}}
		}()

		for _, g := range ids {
			v := query.Pair{{.N}}[{{.Types}}]{
				{{- range .Nums}}
				V{{.}}: t.q{{.}}.get(w, g),
				{{- end}}
			}
			if !yield(Entity(g), v) {
				return
			}
		}
	}
}
`))

func reverse(nums []int) []int {
	out := make([]int, len(nums))
	for i, n := range nums {
		out[len(nums)-1-i] = n
	}
	return out
}

func render(tmpl *template.Template, arities []arity) ([]byte, error) {
	var buf bytes.Buffer
	for _, a := range arities {
		if err := tmpl.Execute(&buf, a); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func main() {
	// go:generate (query_tuple.go's header) invokes this via `go run
	// ./query/gen` from the module root, so paths default relative to
	// the root, not this package's own directory.
	tupleOut := flag.String("tuple-out", "query_tuple.go", "path to write the root-package TupleN family")
	pairOut := flag.String("pair-out", "query/tuple.go", "path to write the query.PairN family")
	flag.Parse()

	var arities []arity
	for n := minArity; n <= maxArity; n++ {
		arities = append(arities, newArity(n))
	}

	pairBody, err := render(pairTemplate, arities)
	if err != nil {
		log.Fatalf("render pairs: %v", err)
	}
	pairSrc := []byte(`// Pair arities ` + fmt.Sprintf("%d", minArity) + ` through ` + fmt.Sprintf("%d", maxArity) + `; Go has no variadic generics so each arity is
// its own concrete type. DO NOT reorder members — the root package's TupleN
// query types build these positionally. Reproducible via ../query/gen (see
// DESIGN.md); go:generate atop ../query_tuple.go regenerates this file too.
package query
`)
	pairSrc = append(pairSrc, pairBody...)
	if err := writeFormatted(*pairOut, pairSrc); err != nil {
		log.Fatalf("write %s: %v", *pairOut, err)
	}

	tupleBody, err := render(tupleTemplate, arities)
	if err != nil {
		log.Fatalf("render tuples: %v", err)
	}
	tupleSrc := []byte(`// Tuple arities ` + fmt.Sprintf("%d", minArity) + ` through ` + fmt.Sprintf("%d", maxArity) + `; Go has no variadic
// generics so each arity is its own concrete type following the identical
// mechanical pattern: combine children's mask predicates, resolve the guid
// list (ordered if any child is hierarchical, else the per-mask cache),
// lock every child's storage for the walk, and materialize each child's
// value per guid into a query.PairN. Reproducible via query/gen; DO NOT
// extend this file by adding a 17th arity without also updating
// SPEC_FULL.md's stated bound and query/gen's maxArity.
//
//go:generate go run ./query/gen -tuple-out=query_tuple.go -pair-out=query/tuple.go
package loom

import (
	"github.com/forgeweave/loom/bitset"
	"github.com/forgeweave/loom/query"
)

// combineAll folds a list of per-child mask predicates into the tuple's
// combined predicate via repeated Combine (associative and commutative,
// bitset.Predicate.Combine's doc comment).
func combineAll(preds ...bitset.Predicate) bitset.Predicate {
	p := bitset.All()
	for _, q := range preds {
		p = p.Combine(q)
	}
	return p
}

// resolveIDs returns the guid list a tuple query should walk: the first
// ordered child's pre-order walk filtered by the combined predicate, or the
// unordered per-mask cache when no child is hierarchical (spec.md §4.4).
// Cache keys use Predicate.Key(), not Mask().Key() — the latter collapses
// has/not/or into one set of bits and would collide two differently-signed
// queries over the same component types.
func resolveIDs(w *World, m bitset.Predicate, ordered []orderedFetcher) []uint64 {
	if len(ordered) > 0 {
		key, ids := ordered[0].orderedSource(w)
		cacheKey := key + m.Key()
		return w.orderedCache.GetOrCompute(cacheKey, func() []uint64 {
			out := make([]uint64, 0, len(ids))
			for _, g := range ids {
				if m.Check(w.maskOf(g)) {
					out = append(out, g)
				}
			}
			return out
		})
	}
	key := m.Key()
	return w.maskCache.GetOrCompute(key, func() []uint64 {
		w.tableMu.RLock()
		defer w.tableMu.RUnlock()
		out := make([]uint64, 0, len(w.entities))
		for _, row := range w.entities {
			if m.Check(row.mask) {
				out = append(out, row.guid)
			}
		}
		return out
	})
}
`)
	tupleSrc = append(tupleSrc, tupleBody...)
	if err := writeFormatted(*tupleOut, tupleSrc); err != nil {
		log.Fatalf("write %s: %v", *tupleOut, err)
	}
}

func writeFormatted(path string, src []byte) error {
	formatted, err := format.Source(src)
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
