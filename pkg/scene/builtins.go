package scene

import (
	"fmt"

	"github.com/go-drift/binder/pkg/errors"
	"github.com/go-drift/binder/pkg/widget"
)

func registerBuiltins(r *Registry) {
	for _, f := range []FactoryFunc{
		{"frame", createFrame},
		{"panel", createPanel},
		{"scroll", createScroll},
		{"button", createButton},
		{"label", createLabel},
		{"list", createList},
		{"table", createTable},
		{"textfield", createTextField},
		{"textarea", createTextArea},
	} {
		r.RegisterFactory(f)
	}
}

func createFrame(b *Builder, n *Node, path string) (widget.Component, error) {
	if err := onlySlot(n, path, "content"); err != nil {
		return nil, err
	}
	f := widget.NewFrame(n.Name, n.Title, nil)
	if n.Content == nil {
		return f, nil
	}
	c, err := b.Node(n.Content, path+".content")
	if err != nil {
		return nil, err
	}
	content, ok := c.(widget.Container)
	if !ok {
		return nil, sceneError("scene.Build", n.Name,
			&errors.ParseError{Path: path + ".content", DataType: "container", Got: c})
	}
	f.SetContent(content)
	return f, nil
}

func createPanel(b *Builder, n *Node, path string) (widget.Component, error) {
	if err := onlySlot(n, path, "children"); err != nil {
		return nil, err
	}
	p := widget.NewPanel(n.Name)
	for i, child := range n.Children {
		c, err := b.Node(child, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		p.Add(c)
	}
	return p, nil
}

func createScroll(b *Builder, n *Node, path string) (widget.Component, error) {
	if err := onlySlot(n, path, "view"); err != nil {
		return nil, err
	}
	s := widget.NewScrollPane(n.Name, nil)
	if n.View != nil {
		v, err := b.Node(n.View, path+".view")
		if err != nil {
			return nil, err
		}
		s.SetView(v)
	}
	return s, nil
}

func createButton(_ *Builder, n *Node, path string) (widget.Component, error) {
	if err := onlySlot(n, path, ""); err != nil {
		return nil, err
	}
	return widget.NewButton(n.Name, n.Text), nil
}

func createLabel(_ *Builder, n *Node, path string) (widget.Component, error) {
	if err := onlySlot(n, path, ""); err != nil {
		return nil, err
	}
	return widget.NewLabel(n.Name, n.Text), nil
}

func createList(_ *Builder, n *Node, path string) (widget.Component, error) {
	if err := onlySlot(n, path, ""); err != nil {
		return nil, err
	}
	items := n.Items
	if items == nil {
		items = []any{}
	}
	l := widget.NewList(n.Name, items)
	if n.VisibleRows > 0 {
		l.SetVisibleRows(n.VisibleRows)
	}
	if err := applySelection(l, n, path, len(items)); err != nil {
		return nil, err
	}
	return l, nil
}

func createTable(_ *Builder, n *Node, path string) (widget.Component, error) {
	if err := onlySlot(n, path, ""); err != nil {
		return nil, err
	}
	for i, row := range n.Rows {
		if len(n.Columns) > 0 && len(row) != len(n.Columns) {
			return nil, sceneError("scene.Build", n.Name,
				fmt.Errorf("%s.rows[%d] has %d cells, want %d", path, i, len(row), len(n.Columns)))
		}
	}
	rows := n.Rows
	if rows == nil {
		rows = [][]any{}
	}
	t := widget.NewTable(n.Name, n.Columns, rows)
	if err := applySelection(t, n, path, len(rows)); err != nil {
		return nil, err
	}
	return t, nil
}

func createTextField(_ *Builder, n *Node, path string) (widget.Component, error) {
	if err := onlySlot(n, path, ""); err != nil {
		return nil, err
	}
	t := widget.NewTextField(n.Name, n.Text)
	if n.Editable != nil {
		t.SetEditable(*n.Editable)
	}
	return t, nil
}

func createTextArea(_ *Builder, n *Node, path string) (widget.Component, error) {
	if err := onlySlot(n, path, ""); err != nil {
		return nil, err
	}
	t := widget.NewTextArea(n.Name, n.Text)
	if n.Editable != nil {
		t.SetEditable(*n.Editable)
	}
	return t, nil
}

func applySelection(c widget.Selectable, n *Node, path string, count int) error {
	if n.Selection == nil {
		return nil
	}
	i := *n.Selection
	if i < 0 || i >= count {
		return sceneError("scene.Build", n.Name,
			fmt.Errorf("%s.selection %d out of range [0,%d)", path, i, count))
	}
	c.SetSelectionInterval(i, i)
	return nil
}

// onlySlot rejects child slots the node type does not own.
func onlySlot(n *Node, path, allowed string) error {
	check := func(slot string, set bool) error {
		if set && slot != allowed {
			return sceneError("scene.Build", n.Name,
				fmt.Errorf("%s: %s node cannot have %s", path, n.Type, slot))
		}
		return nil
	}
	if err := check("children", len(n.Children) > 0); err != nil {
		return err
	}
	if err := check("content", n.Content != nil); err != nil {
		return err
	}
	return check("view", n.View != nil)
}
