// Command scanctl utilidades de operación del servicio de escaneo: migraciones, decodificación
// GS1, escaneos de prueba contra la base de datos y emisión de tokens de desarrollo.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
