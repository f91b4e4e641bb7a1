package domain

// RenameItem describes a single planned in-place rename.
type RenameItem struct {
	SourcePath string
	TargetPath string
	OldName    string
	NewName    string
	Unchanged  bool
}

type RenamePlan struct {
	Dir            string
	Items          []RenameItem
	CollisionItems []RenameItem
	UnchangedCount int
	Warnings       []string
}

// RenamedCount is the number of items that actually change a name and are
// not blocked by an existing target.
func (p RenamePlan) RenamedCount() int {
	count := 0
	for _, item := range p.Items {
		if item.Unchanged || p.Blocked(item) {
			continue
		}
		count++
	}
	return count
}

// Blocked reports whether item is withheld by a collision. Collisions are
// identified by source path since several sources can share a target.
func (p RenamePlan) Blocked(item RenameItem) bool {
	for _, collision := range p.CollisionItems {
		if collision.SourcePath == item.SourcePath {
			return true
		}
	}
	return false
}
