package hydration

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/bizdev-backend/internal/model"
)

// fakeStore serves canned artifacts and records what was asked of it. The
// hydrator fetches from one goroutine per item, so the call recording is
// guarded; artifacts and failKinds are read-only after setup.
type fakeStore struct {
	artifacts map[model.ArtifactKind]map[int]model.Artifact
	failKinds map[model.ArtifactKind]bool

	mu      sync.Mutex
	lastIDs []int
	calls   int
}

func (s *fakeStore) FetchByIDs(_ context.Context, kind model.ArtifactKind, ids []int) ([]model.Artifact, error) {
	s.mu.Lock()
	s.calls++
	s.lastIDs = ids
	s.mu.Unlock()
	if s.failKinds[kind] {
		return nil, errors.New("store unavailable")
	}
	out := []model.Artifact{}
	for _, id := range ids {
		if a, ok := s.artifacts[kind][id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		artifacts: map[model.ArtifactKind]map[int]model.Artifact{},
		failKinds: map[model.ArtifactKind]bool{},
	}
}

func (s *fakeStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *fakeStore) add(kind model.ArtifactKind, a model.Artifact) {
	if s.artifacts[kind] == nil {
		s.artifacts[kind] = map[int]model.Artifact{}
	}
	s.artifacts[kind][a.ArtifactID()] = a
}

func blogArtifact(id int, published bool) *model.Blog {
	return &model.Blog{ID: id, Title: "blog", Published: published}
}

func TestResolvePreservesReferenceOrder(t *testing.T) {
	store := newFakeStore()
	store.add(model.KindBlog, blogArtifact(7, true))
	store.add(model.KindBlog, blogArtifact(3, false))
	store.add(model.KindBlog, blogArtifact(9, true))

	resolver := &Resolver{Store: store}
	item := &model.WorkPackageItem{ID: 1, Kind: model.KindBlog, BlogIDs: []int64{9, 3, 7}}

	res := resolver.Resolve(context.Background(), item)
	require.Len(t, res.Artifacts, 3)
	assert.Equal(t, 9, res.Artifacts[0].Artifact.ArtifactID())
	assert.Equal(t, 3, res.Artifacts[1].Artifact.ArtifactID())
	assert.Equal(t, 7, res.Artifacts[2].Artifact.ArtifactID())
	for _, ra := range res.Artifacts {
		assert.Equal(t, model.KindBlog, ra.Kind)
	}
}

func TestResolveDeduplicatesIDs(t *testing.T) {
	store := newFakeStore()
	store.add(model.KindBlog, blogArtifact(5, true))
	store.add(model.KindBlog, blogArtifact(7, true))

	resolver := &Resolver{Store: store}
	item := &model.WorkPackageItem{ID: 1, Kind: model.KindBlog, BlogIDs: []int64{5, 5, 7}}

	res := resolver.Resolve(context.Background(), item)
	assert.Len(t, res.Artifacts, 2)
	assert.Equal(t, []int{5, 7}, store.lastIDs)
}

func TestResolveDroppedArtifactsCountedNotFatal(t *testing.T) {
	// An artifact deleted after being referenced just disappears from the
	// result.
	store := newFakeStore()
	store.add(model.KindPersona, &model.Persona{ID: 2, Name: "GC", Published: true})

	resolver := &Resolver{Store: store}
	item := &model.WorkPackageItem{ID: 1, Kind: model.KindPersona, PersonaIDs: []int64{2, 44}}

	res := resolver.Resolve(context.Background(), item)
	require.Len(t, res.Artifacts, 1)
	assert.Equal(t, 2, res.Artifacts[0].Artifact.ArtifactID())
	assert.Equal(t, 1, res.MissingCount)
	assert.False(t, res.Failed)
}

func TestResolveStoreFailureFlagsItem(t *testing.T) {
	store := newFakeStore()
	store.failKinds[model.KindBlog] = true

	resolver := &Resolver{Store: store}
	item := &model.WorkPackageItem{ID: 1, Kind: model.KindBlog, BlogIDs: []int64{1}}

	res := resolver.Resolve(context.Background(), item)
	assert.Empty(t, res.Artifacts)
	assert.True(t, res.Failed)
}

func TestResolveEmptyItemSkipsStore(t *testing.T) {
	store := newFakeStore()
	resolver := &Resolver{Store: store}
	item := &model.WorkPackageItem{ID: 1, Kind: model.KindBlog}

	res := resolver.Resolve(context.Background(), item)
	assert.Empty(t, res.Artifacts)
	assert.Zero(t, store.calls)
}

func TestItemAttachmentsUnionsCollateral(t *testing.T) {
	item := &model.WorkPackageItem{
		ID:      1,
		Kind:    model.KindBlog,
		BlogIDs: []int64{1, 2},
		Collateral: []model.Collateral{
			{Kind: model.KindBlog, ArtifactRefID: 2},  // duplicate of the list
			{Kind: model.KindBlog, ArtifactRefID: 3},  // collateral-only
			{Kind: model.KindPersona, ArtifactRefID: 9}, // wrong kind, skipped
		},
	}

	att := ItemAttachments(item)
	assert.Equal(t, model.KindBlog, att.Kind)
	assert.Equal(t, []int{1, 2, 3}, att.IDs)
}

func TestItemAttachmentsCollateralOnly(t *testing.T) {
	// Legacy items may carry collateral and an empty id list.
	item := &model.WorkPackageItem{
		ID:   1,
		Kind: model.KindCLEDeck,
		Collateral: []model.Collateral{
			{Kind: model.KindCLEDeck, ArtifactRefID: 4},
			{Kind: model.KindCLEDeck, ArtifactRefID: 4},
		},
	}

	att := ItemAttachments(item)
	assert.Equal(t, []int{4}, att.IDs)
}
