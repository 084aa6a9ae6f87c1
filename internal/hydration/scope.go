// internal/hydration/scope.go
package hydration

// Scope is who a hydrated work package is being projected for.
type Scope string

const (
    // ScopeOwner sees everything, published or not.
    ScopeOwner Scope = "owner"
    // ScopeClient sees published artifacts only. Unpublished artifacts are
    // removed entirely, so a client response is indistinguishable from one
    // over a smaller artifact set.
    ScopeClient Scope = "client"
)

// FilterArtifacts applies the viewer scope to a resolved artifact list.
func FilterArtifacts(scope Scope, artifacts []ResolvedArtifact) []ResolvedArtifact {
    if scope != ScopeClient {
        return artifacts
    }
    visible := make([]ResolvedArtifact, 0, len(artifacts))
    for _, ra := range artifacts {
        if ra.Artifact.IsPublished() {
            visible = append(visible, ra)
        }
    }
    return visible
}
