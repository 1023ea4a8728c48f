package appointment

type ServiceType string

const (
	ServiceHaircut         ServiceType = "corte"
	ServiceHaircutBeard    ServiceType = "corte_barba"
	ServiceBeard           ServiceType = "barba"
	ServiceFreeHaircut     ServiceType = "corte_gratis"
	ServiceDye             ServiceType = "tinte"
	ServiceHaircutDye      ServiceType = "corte_tinte"
	ServiceHaircutBeardDye ServiceType = "corte_barba_tinte"
)

// FreeHaircutCost is debited when booking and refunded on cancellation.
const FreeHaircutCost = 100

var completionPoints = map[ServiceType]int{
	ServiceHaircut:         10,
	ServiceHaircutBeard:    15,
	ServiceHaircutDye:      10,
	ServiceHaircutBeardDye: 15,
	ServiceDye:             0,
	ServiceBeard:           5,
	ServiceFreeHaircut:     0,
}

var serviceTypes = []ServiceType{
	ServiceHaircut,
	ServiceHaircutBeard,
	ServiceBeard,
	ServiceFreeHaircut,
	ServiceDye,
	ServiceHaircutDye,
	ServiceHaircutBeardDye,
}

func ServiceTypes() []ServiceType {
	return append([]ServiceType(nil), serviceTypes...)
}

func (s ServiceType) Valid() bool {
	_, ok := completionPoints[s]
	return ok
}

func (s ServiceType) IsFree() bool {
	return s == ServiceFreeHaircut
}

// CompletionPoints is the loyalty award for finishing a service of type s.
func (s ServiceType) CompletionPoints() int {
	return completionPoints[s]
}
