package entity

// Screenshot is an encoded viewport capture as produced by the browser.
type Screenshot struct {
	Data   []byte
	Format string
}
