package types

// Book is one catalog entry. The catalog is curated externally (see the
// books import command); the services read it but never mutate it.
type Book struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
	Year   int    `json:"year"`
}
