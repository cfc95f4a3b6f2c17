package structs

// NodeHeap is a decoded (distance, id) pair — the value type ResultHeap
// drains into once it no longer needs to live packed in a uint64.
type NodeHeap struct {
	Dist float32
	Id   int
}
