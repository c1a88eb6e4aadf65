package costos

/*
DISTANCIA Y COSTO DE VIAJE (estimador sin red)

La app original geocodificaba con un servicio web; aquí las coordenadas
salen de una tabla estática con las ciudades frecuentes del dataset y la
distancia es haversine (suficiente para estimar costos por carretera).

Tarifas por modo, igual que el guion original:
  auto ₹10/km, tren ₹2/km, avión ₹6/km.
*/

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const earthRadiusKm = 6371.0

// Tarifas en INR por kilómetro.
const (
	RateCar    = 10.0
	RateTrain  = 2.0
	RateFlight = 6.0
)

type Coord struct {
	Lat, Lon float64
}

// coords cubre las ciudades más frecuentes del dataset de destinos.
var coords = map[string]Coord{
	"Delhi":              {28.6139, 77.2090},
	"New Delhi":          {28.6139, 77.2090},
	"Agra":               {27.1767, 78.0081},
	"Jaipur":             {26.9124, 75.7873},
	"Mumbai":             {19.0760, 72.8777},
	"Kolkata":            {22.5726, 88.3639},
	"Chennai":            {13.0827, 80.2707},
	"Bangalore":          {12.9716, 77.5946},
	"Hyderabad":          {17.3850, 78.4867},
	"Varanasi":           {25.3176, 82.9739},
	"Amritsar":           {31.6340, 74.8723},
	"Lucknow":            {26.8467, 80.9462},
	"Bhopal":             {23.2599, 77.4126},
	"Pune":               {18.5204, 73.8567},
	"Ahmedabad":          {23.0225, 72.5714},
	"Udaipur":            {24.5854, 73.7125},
	"Jodhpur":            {26.2389, 73.0243},
	"Shimla":             {31.1048, 77.1734},
	"Manali":             {32.2396, 77.1887},
	"Darjeeling":         {27.0360, 88.2627},
	"Gangtok":            {27.3389, 88.6065},
	"Guwahati":           {26.1445, 91.7362},
	"Bhubaneswar":        {20.2961, 85.8245},
	"Kochi":              {9.9312, 76.2673},
	"Thiruvananthapuram": {8.5241, 76.9366},
	"Mysore":             {12.2958, 76.6394},
	"Goa":                {15.2993, 74.1240},
	"Panaji":             {15.4909, 73.8278},
	"Rishikesh":          {30.0869, 78.2676},
	"Haridwar":           {29.9457, 78.1642},
	"Srinagar":           {34.0837, 74.7973},
	"Leh":                {34.1526, 77.5771},
}

// Lookup busca la ciudad (insensible a mayúsculas) en la tabla estática.
func Lookup(city string) (Coord, bool) {
	city = strings.TrimSpace(city)
	if c, ok := coords[city]; ok {
		return c, true
	}
	for name, c := range coords {
		if strings.EqualFold(name, city) {
			return c, true
		}
	}
	return Coord{}, false
}

// Cities lista las ciudades conocidas, ordenadas.
func Cities() []string {
	out := make([]string, 0, len(coords))
	for name := range coords {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// HaversineKm es la distancia de círculo máximo entre dos coordenadas.
func HaversineKm(a, b Coord) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// Estimate resume una ruta: distancia y costo por modo.
type Estimate struct {
	Km     float64
	Car    float64
	Train  float64
	Flight float64
}

// EstimateTrip calcula la estimación entre dos ciudades conocidas.
func EstimateTrip(origin, destination string) (Estimate, error) {
	a, ok := Lookup(origin)
	if !ok {
		return Estimate{}, fmt.Errorf("ciudad no reconocida: %q", origin)
	}
	b, ok := Lookup(destination)
	if !ok {
		return Estimate{}, fmt.Errorf("ciudad no reconocida: %q", destination)
	}
	km := HaversineKm(a, b)
	return Estimate{
		Km:     km,
		Car:    round2(km * RateCar),
		Train:  round2(km * RateTrain),
		Flight: round2(km * RateFlight),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
