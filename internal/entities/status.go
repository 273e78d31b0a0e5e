package entities

// Status состояние жизненного цикла заказа. Статусы привязаны к словарю
// провайдера: каждый принимает только значения из ValidStatus, всё прочее
// из проверки статуса игнорируется.
type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
	StatusCompleted  Status = "completed"
	StatusRefunded   Status = "refunded"
	StatusIncomplete Status = "incomplete"
	StatusFail       Status = "fail"
)

// InitialStatus статус, с которого начинается свежесозданный заказ.
func (p Provider) InitialStatus() Status {
	if p == ProviderMoogold {
		return StatusProcessing
	}
	return StatusWaiting
}

// CheckableStatus единственный нетерминальный статус, который перепроверяет
// воркер сверки. У каждого провайдера он совпадает с начальным: других
// промежуточных статусов до терминального они не присваивают.
func (p Provider) CheckableStatus() Status {
	return p.InitialStatus()
}

// ValidStatus проверяет, что s входит в словарь статусов провайдера.
// Статус вне словаря не должен попадать в хранилище.
func (p Provider) ValidStatus(s Status) bool {
	switch p {
	case ProviderVipayment:
		switch s {
		case StatusWaiting, StatusProcessing, StatusSuccess, StatusFailed:
			return true
		}
	case ProviderMoogold:
		switch s {
		case StatusProcessing, StatusCompleted, StatusRefunded, StatusIncomplete:
			return true
		}
	case ProviderJollymax:
		switch s {
		case StatusWaiting, StatusProcessing, StatusSuccess, StatusFail:
			return true
		}
	}
	return false
}
