package entities

type BatchOperation string

const (
	BatchAssign   BatchOperation = "assign"
	BatchUnassign BatchOperation = "unassign"
	BatchArchive  BatchOperation = "archive"
	BatchRestore  BatchOperation = "restore"
	BatchDelete   BatchOperation = "delete"
)

func (o BatchOperation) String() string {
	return string(o)
}

type BatchItemStatus string

const (
	BatchItemApplied    BatchItemStatus = "applied"
	BatchItemUnchanged  BatchItemStatus = "unchanged"
	BatchItemFailed     BatchItemStatus = "failed"
	BatchItemSkipped    BatchItemStatus = "skipped"
	BatchItemRolledBack BatchItemStatus = "rolled_back"
)

func (s BatchItemStatus) String() string {
	return string(s)
}

type BatchItem struct {
	OrderID int64
	Status  BatchItemStatus
	Err     error
}

// BatchResult результат пакетной операции по каждому заказу в порядке выбора.
type BatchResult struct {
	Operation BatchOperation
	Atomic    bool
	Items     []BatchItem
}

func NewBatchResult(op BatchOperation, atomic bool, ids []int64) *BatchResult {
	items := make([]BatchItem, len(ids))
	for i, id := range ids {
		items[i] = BatchItem{OrderID: id, Status: BatchItemSkipped}
	}
	return &BatchResult{
		Operation: op,
		Atomic:    atomic,
		Items:     items,
	}
}

func (r *BatchResult) count(statuses ...BatchItemStatus) int {
	n := 0
	for _, item := range r.Items {
		for _, s := range statuses {
			if item.Status == s {
				n++
				break
			}
		}
	}
	return n
}

// Succeeded число заказов, которые после операции находятся в целевом состоянии.
func (r *BatchResult) Succeeded() int {
	return r.count(BatchItemApplied, BatchItemUnchanged)
}

func (r *BatchResult) Failed() int {
	return r.count(BatchItemFailed)
}

// Complete все заказы дошли до целевого состояния.
func (r *BatchResult) Complete() bool {
	return r.Succeeded() == len(r.Items)
}

// FirstError первая ошибка элемента, nil если ошибок нет.
func (r *BatchResult) FirstError() error {
	for _, item := range r.Items {
		if item.Err != nil {
			return item.Err
		}
	}
	return nil
}
