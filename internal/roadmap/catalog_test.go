package roadmap

import (
	"strings"
	"testing"
)

func TestResolveResourcesExactMatch(t *testing.T) {
	got := resolveResources("React", bucketFoundations)
	if len(got) != 3 {
		t.Fatalf("expected 3 foundations resources, got %d", len(got))
	}
	if got[0].Title != "React Official Documentation" {
		t.Fatalf("unexpected first resource: %+v", got[0])
	}
}

func TestResolveResourcesBucketSelection(t *testing.T) {
	foundations := resolveResources("Docker", bucketFoundations)
	project := resolveResources("Docker", bucketProject)
	if foundations[0].Title == project[0].Title {
		t.Fatalf("foundations and project buckets should differ")
	}
	if project[0].Title != "Docker Best Practices" {
		t.Fatalf("unexpected project resource: %+v", project[0])
	}
}

func TestResolveResourcesSubstringFallback(t *testing.T) {
	// "ReactJS" is not a catalog key but contains "react".
	got := resolveResources("ReactJS", bucketFoundations)
	if got[0].Title != "React Official Documentation" {
		t.Fatalf("expected React catalog entry via substring match, got %+v", got[0])
	}
}

func TestResolveResourcesSubstringFallbackFirstInOrder(t *testing.T) {
	// "node" is a substring of the "Node.js" key; the walk stops at the
	// first catalog-order match.
	got := resolveResources("node", bucketFoundations)
	if got[0].Title != "Node.js Official Docs" {
		t.Fatalf("expected Node.js entry, got %+v", got[0])
	}
}

func TestResolveResourcesSynthesizedForUnknownSkill(t *testing.T) {
	for _, bucket := range []resourceBucket{bucketFoundations, bucketProject} {
		got := resolveResources("Rust", bucket)
		if len(got) != 3 {
			t.Fatalf("bucket %s: expected 3 synthesized resources, got %d", bucket, len(got))
		}
		for _, r := range got {
			if !strings.Contains(r.URL, "Rust") {
				t.Fatalf("bucket %s: synthesized URL %q should contain the skill name", bucket, r.URL)
			}
			if r.Title == "" || r.Type == "" {
				t.Fatalf("bucket %s: incomplete synthesized resource %+v", bucket, r)
			}
		}
	}
}

func TestResolveResourcesReturnsCopies(t *testing.T) {
	first := resolveResources("React", bucketFoundations)
	first[0].Title = "mutated"
	second := resolveResources("React", bucketFoundations)
	if second[0].Title == "mutated" {
		t.Fatalf("catalog entries must not be mutable through results")
	}
}

func TestCatalogOrderCoversCatalog(t *testing.T) {
	if len(catalogOrder) != len(resourceCatalog) {
		t.Fatalf("catalogOrder has %d keys, catalog has %d", len(catalogOrder), len(resourceCatalog))
	}
	for _, key := range catalogOrder {
		entry, ok := resourceCatalog[key]
		if !ok {
			t.Fatalf("catalogOrder key %q missing from catalog", key)
		}
		if len(entry.foundations) != 3 || len(entry.project) != 3 {
			t.Fatalf("catalog entry %q should have 3 resources per bucket", key)
		}
	}
}
