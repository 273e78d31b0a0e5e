package entities

// Provider идентифицирует сервис пополнения, которому принадлежит заказ.
type Provider string

const (
	ProviderVipayment Provider = "VIPAYMENT"
	ProviderMoogold   Provider = "MOOGOLD"
	ProviderJollymax  Provider = "JOLLYMAX"
)

// Providers перечисляет поддерживаемые сервисы.
func Providers() []Provider {
	return []Provider{ProviderVipayment, ProviderMoogold, ProviderJollymax}
}

// ProviderByCode находит провайдера по короткому коду сервиса из витринного
// запроса ("VP+430+Diamonds"). Вся маршрутизация держится на этой тройке.
func ProviderByCode(code string) (Provider, bool) {
	switch code {
	case "VP":
		return ProviderVipayment, true
	case "MG":
		return ProviderMoogold, true
	case "JM":
		return ProviderJollymax, true
	}
	return "", false
}

// Code возвращает короткий код сервиса.
func (p Provider) Code() string {
	switch p {
	case ProviderVipayment:
		return "VP"
	case ProviderMoogold:
		return "MG"
	case ProviderJollymax:
		return "JM"
	}
	return ""
}

// Title возвращает название сервиса для сообщений операторам.
func (p Provider) Title() string {
	switch p {
	case ProviderVipayment:
		return "VIPayment"
	case ProviderMoogold:
		return "MooGold"
	case ProviderJollymax:
		return "JollyMax"
	}
	return string(p)
}
