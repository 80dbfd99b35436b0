package maven

import (
	"errors"
	"maps"
	"testing"

	"github.com/pomforge/pomforge/pkg/build"
)

// mustGraph builds a graph from target specs. Each spec is label, tags,
// deps, exports.
type targetSpec struct {
	label   string
	tags    []string
	deps    []string
	exports []string
}

func mustGraph(t *testing.T, specs []targetSpec) *build.Graph {
	t.Helper()
	g := build.New()
	for _, s := range specs {
		if err := g.AddTarget(build.Target{Label: s.label, Tags: s.tags}); err != nil {
			t.Fatalf("AddTarget(%s): %v", s.label, err)
		}
	}
	for _, s := range specs {
		for _, d := range s.deps {
			if err := g.AddEdge(s.label, d, build.EdgeDep); err != nil {
				t.Fatalf("AddEdge(%s deps %s): %v", s.label, d, err)
			}
		}
		for _, e := range s.exports {
			if err := g.AddEdge(s.label, e, build.EdgeExport); err != nil {
				t.Fatalf("AddEdge(%s exports %s): %v", s.label, e, err)
			}
		}
	}
	return g
}

func coordTag(coord string) string { return "maven_coordinates=" + coord }

func set(coords ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(coords))
	for _, c := range coords {
		m[c] = struct{}{}
	}
	return m
}

func TestAggregate_ExemptTargetContributesNothing(t *testing.T) {
	for _, marker := range []string{"maven:compile_only", "maven:shaded"} {
		t.Run(marker, func(t *testing.T) {
			g := mustGraph(t, []targetSpec{
				{label: "//leaf", tags: []string{coordTag("g:leaf:1")}},
				{label: "//exempt", tags: []string{coordTag("g:exempt:1"), marker},
					deps: []string{"//leaf"}, exports: []string{"//leaf"}},
			})

			got, err := Aggregate(g, []string{"//exempt"})
			if err != nil {
				t.Fatalf("Aggregate: %v", err)
			}
			if len(got) != 0 {
				t.Errorf("Aggregate = %v, want empty set", got)
			}
		})
	}
}

func TestAggregate_ExemptTargetIsOpaqueBarrier(t *testing.T) {
	// //top exports //exempt which exports //leaf. Nothing downstream of
	// the exempt target may leak through it.
	g := mustGraph(t, []targetSpec{
		{label: "//leaf", tags: []string{coordTag("g:leaf:1")}},
		{label: "//exempt", tags: []string{"maven:shaded"}, exports: []string{"//leaf"}},
		{label: "//top", deps: []string{"//exempt"}, exports: []string{"//exempt"}},
	})

	got, err := Aggregate(g, []string{"//top"})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Aggregate = %v, want empty set", got)
	}
}

func TestAggregate_ExportIsTransitive(t *testing.T) {
	// a exports b, b exports c: c's coordinate propagates to a's consumers
	// and into aggregate([a]).
	g := mustGraph(t, []targetSpec{
		{label: "//c", tags: []string{coordTag("g:c:1")}},
		{label: "//b", tags: []string{coordTag("g:b:1")}, exports: []string{"//c"}},
		{label: "//a", exports: []string{"//b"}},
	})

	got, err := Aggregate(g, []string{"//a"})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	want := set("g:b:1", "g:c:1")
	if !maps.Equal(got, want) {
		t.Errorf("Aggregate = %v, want %v", got, want)
	}
}

func TestAggregate_PlainDepsDoNotLeak(t *testing.T) {
	// a depends on b. b exports c but merely depends on d: aggregate([a])
	// sees b's own coordinate and c (re-exported), never d.
	g := mustGraph(t, []targetSpec{
		{label: "//d", tags: []string{coordTag("g:d:1")}},
		{label: "//c", tags: []string{coordTag("g:c:1")}},
		{label: "//b", tags: []string{coordTag("g:b:1")},
			deps: []string{"//d"}, exports: []string{"//c"}},
		{label: "//a", deps: []string{"//b"}},
	})

	got, err := Aggregate(g, []string{"//a"})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	want := set("g:b:1", "g:c:1")
	if !maps.Equal(got, want) {
		t.Errorf("Aggregate = %v, want %v", got, want)
	}
	if _, ok := got["g:d:1"]; ok {
		t.Error("implementation-only dependency g:d:1 leaked into aggregate")
	}
}

func TestAggregate_OwnCoordinateOfTopLevelExcluded(t *testing.T) {
	// The pom lists what the artifact depends on, not the artifact itself.
	g := mustGraph(t, []targetSpec{
		{label: "//dep", tags: []string{coordTag("g:dep:1")}},
		{label: "//top", tags: []string{coordTag("g:top:1")}, deps: []string{"//dep"}},
	})

	got, err := Aggregate(g, []string{"//top"})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	want := set("g:dep:1")
	if !maps.Equal(got, want) {
		t.Errorf("Aggregate = %v, want %v", got, want)
	}
}

func TestAggregate_DiamondVisitsOnce(t *testing.T) {
	// Both branches of the diamond reach //shared; the union stays a set
	// and traversal memoization keeps the result identical.
	g := mustGraph(t, []targetSpec{
		{label: "//shared", tags: []string{coordTag("g:shared:1")}},
		{label: "//left", exports: []string{"//shared"}},
		{label: "//right", exports: []string{"//shared"}},
		{label: "//top", deps: []string{"//left", "//right"}},
	})

	got, err := Aggregate(g, []string{"//top"})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	want := set("g:shared:1")
	if !maps.Equal(got, want) {
		t.Errorf("Aggregate = %v, want %v", got, want)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	g := mustGraph(t, []targetSpec{
		{label: "//b", tags: []string{coordTag("g:b:1")}},
		{label: "//a", deps: []string{"//b"}},
	})

	first, err := Aggregate(g, []string{"//a"})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	second, err := Aggregate(g, []string{"//a"})
	if err != nil {
		t.Fatalf("Aggregate (second run): %v", err)
	}
	if !maps.Equal(first, second) {
		t.Errorf("Aggregate not idempotent: %v vs %v", first, second)
	}
}

func TestAggregate_MultipleTopLevelTargets(t *testing.T) {
	g := mustGraph(t, []targetSpec{
		{label: "//x", tags: []string{coordTag("g:x:1")}},
		{label: "//y", tags: []string{coordTag("g:y:1")}},
		{label: "//a", deps: []string{"//x"}},
		{label: "//b", deps: []string{"//y"}},
	})

	got, err := Aggregate(g, []string{"//a", "//b"})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	want := set("g:x:1", "g:y:1")
	if !maps.Equal(got, want) {
		t.Errorf("Aggregate = %v, want %v", got, want)
	}
}

func TestAggregate_UnknownTarget(t *testing.T) {
	g := mustGraph(t, []targetSpec{{label: "//a"}})

	if _, err := Aggregate(g, []string{"//missing"}); !errors.Is(err, build.ErrUnknownNode) {
		t.Errorf("Aggregate = %v, want ErrUnknownNode", err)
	}
}

func TestAggregate_UnknownEdgeTargetSurfaces(t *testing.T) {
	g := mustGraph(t, []targetSpec{
		{label: "//b", tags: []string{coordTag("g:b:1")}},
		{label: "//a", deps: []string{"//b"}},
	})

	if _, err := Aggregate(g, []string{"//a", "//ghost"}); !errors.Is(err, build.ErrUnknownNode) {
		t.Errorf("Aggregate = %v, want ErrUnknownNode", err)
	}
}

func TestInfos_SplitView(t *testing.T) {
	g := mustGraph(t, []targetSpec{
		{label: "//c", tags: []string{coordTag("g:c:1")}},
		{label: "//b", tags: []string{coordTag("g:b:1")}, exports: []string{"//c"}},
		{label: "//a", tags: []string{coordTag("g:a:1")},
			deps: []string{"//b"}, exports: []string{"//c"}},
	})

	infos, err := Infos(g, []string{"//a"})
	if err != nil {
		t.Fatalf("Infos: %v", err)
	}
	info := infos["//a"]

	if want := set("g:a:1"); !maps.Equal(info.Own, want) {
		t.Errorf("Own = %v, want %v", info.Own, want)
	}
	if want := set("g:b:1", "g:c:1"); !maps.Equal(info.FromDeps, want) {
		t.Errorf("FromDeps = %v, want %v", info.FromDeps, want)
	}
	if want := set("g:c:1"); !maps.Equal(info.FromExports, want) {
		t.Errorf("FromExports = %v, want %v", info.FromExports, want)
	}
}
