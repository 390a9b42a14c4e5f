package uid

import (
	"encoding/json"
	"strconv"
	"time"
)

// TimestampLayout — формат времени в диагностической записи.
const TimestampLayout = "2006-01-02 15:04:05"

// Info — разобранный идентификатор для логов и отладки.
type Info struct {
	UID       int64
	Timestamp time.Time
	WorkerID  int64
	Sequence  int64
}

// Parse разбирает id по раскладке a и эпохе epochSeconds. Генератор не нужен.
func Parse(a *Allocator, epochSeconds, id int64) Info {
	deltaSeconds, workerID, sequence := a.Decode(id)
	return Info{
		UID:       id,
		Timestamp: time.Unix(epochSeconds+deltaSeconds, 0).UTC(),
		WorkerID:  workerID,
		Sequence:  sequence,
	}
}

type infoJSON struct {
	UID       string `json:"UID"`
	Timestamp string `json:"timestamp"`
	WorkerID  string `json:"workerId"`
	Sequence  string `json:"sequence"`
}

func (i Info) view() infoJSON {
	return infoJSON{
		UID:       strconv.FormatInt(i.UID, 10),
		Timestamp: i.Timestamp.Format(TimestampLayout),
		WorkerID:  strconv.FormatInt(i.WorkerID, 10),
		Sequence:  strconv.FormatInt(i.Sequence, 10),
	}
}

// MarshalJSON: все поля пишутся строками.
func (i Info) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.view())
}

// String возвращает запись в том же виде, что и MarshalJSON.
func (i Info) String() string {
	b, _ := i.MarshalJSON()
	return string(b)
}
