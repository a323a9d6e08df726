package ports

type SeenPort interface {
	Add(key string)
	Has(key string) bool
	Len() int
}
