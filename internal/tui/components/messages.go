package components

// RowSelectedMsg is sent when the cursor lands on a different transaction.
type RowSelectedMsg struct {
	ID    string
	Index int
}
