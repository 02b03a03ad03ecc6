package render

type Renderer interface {
	RenderBookList(view BookListView) string
}

type BookListView struct {
	Items []BookListItem
}

type BookListItem struct {
	ID         int
	Title      string
	Author     string
	Year       int
	CheckedOut bool
}

func (v BookListView) IsEmpty() bool {
	return len(v.Items) == 0
}
