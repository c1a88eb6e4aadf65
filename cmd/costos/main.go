package main

/*
ESTIMADOR DE DISTANCIA Y COSTO DE VIAJE

Pregunta origen y destino, calcula la distancia haversine con la tabla
estática de ciudades y estima el costo por modo (auto ₹10/km, tren ₹2/km,
avión ₹6/km). Ciudad no reconocida → mensaje y vuelve a preguntar.
*/

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"tf/costos"
	"tf/utils"
)

func main() {
	listar := flag.Bool("ciudades", false, "listar las ciudades conocidas y salir")
	flag.Parse()

	log := utils.NewLogger(false)

	if *listar {
		for _, c := range costos.Cities() {
			fmt.Println(c)
		}
		return
	}

	in := bufio.NewScanner(os.Stdin)
	read := func(msg string) (string, bool) {
		fmt.Print(msg)
		if !in.Scan() {
			return "", false
		}
		return strings.TrimSpace(in.Text()), true
	}

	for {
		origen, ok := read("Ciudad de origen (ej. Delhi): ")
		if !ok {
			return
		}
		destino, ok := read("Ciudad de destino (ej. Agra): ")
		if !ok {
			return
		}

		est, err := costos.EstimateTrip(origen, destino)
		if err != nil {
			log.Warn("%v — use --ciudades para ver las conocidas", err)
			continue
		}

		fmt.Printf("\nDistancia %s → %s: %.2f km\n", origen, destino, est.Km)
		fmt.Printf("  Auto  (₹%.0f/km): ₹%.2f\n", costos.RateCar, est.Car)
		fmt.Printf("  Tren  (₹%.0f/km): ₹%.2f\n", costos.RateTrain, est.Train)
		fmt.Printf("  Avión (₹%.0f/km): ₹%.2f\n\n", costos.RateFlight, est.Flight)

		resp, ok := read("¿Otra ruta? (s/n): ")
		if !ok || resp != "s" {
			fmt.Println("¡Buen viaje!")
			return
		}
	}
}
