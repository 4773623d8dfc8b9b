package attendance

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rosterly/attendance-backend-go/internal/domain/worker"
)

// Worker snapshot status values. Matching is case-sensitive; any other
// value (including the empty string) counts toward neither tally.
const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
)

// WorkerSnapshot is a copy of a worker's identity fields plus the
// mutable per-day status and comments. Snapshots are created fresh for
// each new date and never track later edits to the source worker.
type WorkerSnapshot struct {
	WorkerID string `bson:"WORKER_ID" json:"WORKER_ID"`
	Name     string `bson:"WORKER_NAME" json:"WORKER_NAME"`
	Email    string `bson:"WORKER_EMAIL" json:"WORKER_EMAIL"`
	Phone    string `bson:"WORKER_PHONE" json:"WORKER_PHONE"`
	Comments string `bson:"COMMENTS" json:"COMMENTS"`
	Status   string `bson:"STATUS" json:"STATUS"`
}

// Entry is the per-date attendance document. One entry per DATE,
// enforced by a unique index.
type Entry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Date       string             `bson:"DATE" json:"DATE"`
	WorkerList []WorkerSnapshot   `bson:"WORKER_LIST" json:"WORKER_LIST"`
	Present    int                `bson:"PRESENT,omitempty" json:"PRESENT"`
	Absent     int                `bson:"ABSENT,omitempty" json:"ABSENT"`
	ClientID   string             `bson:"CLIENT_ID" json:"CLIENT_ID"`
	SignedBy   string             `bson:"SIGNED_BY" json:"SIGNED_BY"`
}

// BuildSnapshots projects the current roster into attendance-ready
// snapshots with unset status and empty comments.
func BuildSnapshots(workers []worker.Worker) []WorkerSnapshot {
	snapshots := make([]WorkerSnapshot, 0, len(workers))
	for _, w := range workers {
		snapshots = append(snapshots, WorkerSnapshot{
			WorkerID: w.ID.Hex(),
			Name:     w.Name,
			Email:    w.Email,
			Phone:    w.Phone,
			Comments: "",
			Status:   "",
		})
	}
	return snapshots
}

// CountStatuses tallies PRESENT and ABSENT over a snapshot list.
func CountStatuses(list []WorkerSnapshot) (present, absent int) {
	for _, s := range list {
		switch s.Status {
		case StatusPresent:
			present++
		case StatusAbsent:
			absent++
		}
	}
	return present, absent
}
