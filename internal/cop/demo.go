package cop

// DemoCase is a named reference operating point.
type DemoCase struct {
	Name     string
	OutdoorC float64
	FlowC    float64
	ReturnC  float64
}

// DemoCases returns the reference operating points used to sanity check the model.
func DemoCases() []DemoCase {
	return []DemoCase{
		{Name: "mild weather space heating", OutdoorC: 10, FlowC: 30, ReturnC: 25},
		{Name: "freezing-point day", OutdoorC: 0, FlowC: 35, ReturnC: 30},
		{Name: "colder, higher flow", OutdoorC: -3, FlowC: 45, ReturnC: 40},
		{Name: "DHW lift to 55 °C", OutdoorC: 10, FlowC: 55, ReturnC: 48},
	}
}
