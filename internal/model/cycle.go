package model

// Cycle is the state of one server visit. Arrival, service and capacity
// fields of cycle i+1 are drawn before the derived fields of cycle i are
// computed.
type Cycle struct {
	Tau      float64 // gap until the next server arrival
	T        float64 // absolute server arrival time
	Service  float64 // service duration x
	Capacity float64 // batch capacity c
	A        float64 // clients admitted during the cycle
	W        float64 // accumulated waiting time
	Wq       float64 // waiting time accumulated while no server runs
	D        float64 // waiting time accumulated during the next service
	Wp       float64 // W without the A1*x cross term
	X        float64 // queue length before service
	Y        float64 // queue length just before the next server arrives
	S        float64 // service completions during the service window
	Z        float64 // clients actually served
}
