package styleid

// The unique identifier for a style inside a style table.
type ID uint64

const DefaultID ID = 0
