package models

import "testing"

func stripFixture() []Group {
	return []Group{
		{ID: AllClipsGroupID, Name: "All", IsSpecial: true},
		{ID: DefaultGroupID, Name: "Default", IsSpecial: true},
		{ID: 1, Name: "Work"},
		{ID: 2, Name: "Snippets"},
		{ID: 3, Name: "Links"},
		{ID: PluginGroupIDCeiling, Name: "Dictionary", IsPlugin: true, BaseColor: "#3498db"},
	}
}

func TestReservedLeading(t *testing.T) {
	tests := []struct {
		name     string
		groups   []Group
		expected int
	}{
		{"standard strip", stripFixture(), 2},
		{"no groups", nil, 0},
		{"specials only", []Group{{ID: AllClipsGroupID, IsSpecial: true}, {ID: DefaultGroupID, IsSpecial: true}}, 2},
		{"user group first", []Group{{ID: 1}, {ID: DefaultGroupID, IsSpecial: true}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReservedLeading(tt.groups); got != tt.expected {
				t.Errorf("ReservedLeading() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestUserGroupSpan(t *testing.T) {
	lo, hi := UserGroupSpan(stripFixture())
	if lo != 2 || hi != 5 {
		t.Errorf("UserGroupSpan() = [%d, %d), want [2, 5)", lo, hi)
	}

	lo, hi = UserGroupSpan([]Group{{ID: AllClipsGroupID, IsSpecial: true}, {ID: DefaultGroupID, IsSpecial: true}})
	if lo != 2 || hi != 2 {
		t.Errorf("UserGroupSpan() with no user groups = [%d, %d), want empty span [2, 2)", lo, hi)
	}
}

func TestGroupReserved(t *testing.T) {
	if !(Group{IsSpecial: true}).Reserved() {
		t.Error("special group should be reserved")
	}
	if !(Group{IsPlugin: true}).Reserved() {
		t.Error("plugin group should be reserved")
	}
	if (Group{}).Reserved() {
		t.Error("user group should not be reserved")
	}
}
