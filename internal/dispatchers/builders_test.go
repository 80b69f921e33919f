package dispatchers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNode_NoParent(t *testing.T) {
	node := NewNode("test", nil, "summary", "description", "usage", nil, nil, nil)

	require.NotNil(t, node)
	require.Equal(t, "test", node.Name)
	require.Equal(t, "summary", node.Summary)
	require.Equal(t, "description", node.Description)
	require.Equal(t, "usage", node.Usage)
	require.Equal(t, []string{"test"}, node.Path)
	require.NotNil(t, node.Children)
}

func TestNewNode_WithParent(t *testing.T) {
	parent := NewNode("parent", nil, "", "", "", nil, nil, nil)
	child := NewNode("child", parent, "child summary", "", "", nil, nil, nil)

	require.Equal(t, []string{"parent", "child"}, child.Path)
	require.Contains(t, parent.Children, "child")
	require.Equal(t, child, parent.Children["child"])
}

func TestNewNode_SiblingPathsDoNotAlias(t *testing.T) {
	root := NewNode("brick", nil, "", "", "", nil, nil, nil)
	group := NewNode("cache", root, "", "", "", nil, nil, nil)
	a := NewNode("clear", group, "", "", "", nil, nil, nil)
	b := NewNode("list", group, "", "", "", nil, nil, nil)

	require.Equal(t, []string{"brick", "cache", "clear"}, a.Path)
	require.Equal(t, []string{"brick", "cache", "list"}, b.Path)
}

func TestNewNode_DuplicatePanics(t *testing.T) {
	root := Root(RootSpec{Name: "brick"})
	Command(CommandSpec{Name: "make", Parent: root})

	require.PanicsWithValue(t, `dispatchers: command "brick make" registered twice`, func() {
		Command(CommandSpec{Name: "make", Parent: root})
	})
}

func TestCommand_SetsCategoryAndAction(t *testing.T) {
	called := false
	action := func(_ context.Context, _ []string, _ *ParsedFlags) (int, error) {
		called = true
		return 0, nil
	}

	root := Root(RootSpec{Name: "brick"})
	node := Command(CommandSpec{
		Name:     "make",
		Parent:   root,
		Action:   action,
		Category: CategoryGenerate,
	})

	require.Equal(t, CategoryGenerate, node.Category)
	_, _ = node.Action(context.Background(), nil, nil)
	require.True(t, called)
	require.False(t, node.IsGroup())
}

func TestGroup_IsGroupOnceItHasChildren(t *testing.T) {
	root := Root(RootSpec{Name: "brick"})
	group := Group(GroupSpec{Name: "cache", Parent: root, Category: CategoryMaintenance})

	require.False(t, group.IsGroup())
	Command(CommandSpec{Name: "clear", Parent: group, Action: noopAction})
	require.True(t, group.IsGroup())
	require.Equal(t, CategoryMaintenance, group.Category)
}
