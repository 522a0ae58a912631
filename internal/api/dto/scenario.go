package dto

type ListScenariosResponse struct {
	Scenarios []string `json:"scenarios"`
}

type LinkResponse struct {
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
	Time int    `json:"time"`
}

type TrainResponse struct {
	Name     string `json:"name"`
	Home     string `json:"home"`
	Capacity int    `json:"capacity"`
}

type DeliveryResponse struct {
	Name    string `json:"name"`
	PickUp  string `json:"pickup"`
	DropOff string `json:"dropoff"`
	Weight  int    `json:"weight"`
}

type ConnectivityResponse struct {
	Components [][]string `json:"components"`
	Isolated   []string   `json:"isolated"`
	Stranded   []string   `json:"stranded"`
}

type ScenarioResponse struct {
	Name         string               `json:"name"`
	Fingerprint  string               `json:"fingerprint"`
	Stations     []string             `json:"stations"`
	Links        []LinkResponse       `json:"links"`
	Trains       []TrainResponse      `json:"trains"`
	Deliveries   []DeliveryResponse   `json:"deliveries"`
	Connectivity ConnectivityResponse `json:"connectivity"`
}
