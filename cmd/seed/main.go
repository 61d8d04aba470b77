// seed carga un catálogo YAML de productos en el directorio de datos.
//
// Uso: go run ./cmd/seed --file catalogo.yaml [--encoding latin1] [--data-dir ./data]
//
// Formato:
//
//	products:
//	  - name: Widget
//	    category: Tools
//	    quantity: 10
//	    unit: pieces
//	    price: "5.00"
//	    min_stock: 3
//
// Los productos cuyo nombre ya existe se omiten.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Inventario-pos/internal/application/dto"
	"github.com/jhoicas/Inventario-pos/internal/application/usecase"
	"github.com/jhoicas/Inventario-pos/internal/domain"
	"github.com/jhoicas/Inventario-pos/internal/infrastructure/filestore"
	"github.com/jhoicas/Inventario-pos/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-pos/internal/infrastructure/system"
	"github.com/jhoicas/Inventario-pos/pkg/config"
	"github.com/jhoicas/Inventario-pos/pkg/logger"
)

type catalog struct {
	Products []catalogItem `yaml:"products"`
}

type catalogItem struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Quantity string `yaml:"quantity"`
	Unit     string `yaml:"unit"`
	Price    string `yaml:"price"`
	MinStock *int   `yaml:"min_stock"`
}

func (it catalogItem) request() (dto.CreateProductRequest, error) {
	qty, err := decimal.NewFromString(orZero(it.Quantity))
	if err != nil {
		return dto.CreateProductRequest{}, fmt.Errorf("%s: quantity %q: %w", it.Name, it.Quantity, err)
	}
	price, err := decimal.NewFromString(orZero(it.Price))
	if err != nil {
		return dto.CreateProductRequest{}, fmt.Errorf("%s: price %q: %w", it.Name, it.Price, err)
	}
	return dto.CreateProductRequest{
		Name:     it.Name,
		Category: it.Category,
		Quantity: qty,
		Unit:     it.Unit,
		Price:    price,
		MinStock: it.MinStock,
	}, nil
}

func orZero(s string) string {
	if strings.TrimSpace(s) == "" {
		return "0"
	}
	return strings.TrimSpace(s)
}

// decodeReader aplica la decodificación indicada (utf-8 o latin1 / ISO-8859-1).
func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return r, nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("codificación no soportada: %s", encoding)
	}
}

// loadCatalog lee y valida el catálogo.
func loadCatalog(r io.Reader, encoding string) ([]dto.CreateProductRequest, error) {
	src, err := decodeReader(r, encoding)
	if err != nil {
		return nil, err
	}
	var c catalog
	if err := yaml.NewDecoder(src).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decodificar YAML: %w", err)
	}
	out := make([]dto.CreateProductRequest, 0, len(c.Products))
	for _, it := range c.Products {
		req, err := it.request()
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}

// seed crea los productos; los nombres repetidos se cuentan como omitidos.
func seed(ctx context.Context, uc *usecase.ProductUseCase, items []dto.CreateProductRequest, log *logger.Logger) (created, skipped int, err error) {
	for _, in := range items {
		if _, err := uc.Create(ctx, in); err != nil {
			if errors.Is(err, domain.ErrDuplicateName) {
				log.Warn().Str("name", in.Name).Msg("producto existente, se omite")
				skipped++
				continue
			}
			return created, skipped, fmt.Errorf("crear %q: %w", in.Name, err)
		}
		created++
	}
	return created, skipped, nil
}

func main() {
	_ = godotenv.Load()

	file := pflag.StringP("file", "f", "catalog.yaml", "catálogo YAML")
	encoding := pflag.String("encoding", "utf-8", "codificación del archivo: utf-8 | latin1")
	dataDir := pflag.String("data-dir", "", "directorio de datos (por defecto DATA_DIR)")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Store.DataDir = *dataDir
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	f, err := os.Open(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir catálogo: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	items, err := loadCatalog(f, *encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Catálogo: %v\n", err)
		os.Exit(1)
	}

	loc, err := system.LoadLocation(cfg.App.Timezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Zona horaria: %v\n", err)
		os.Exit(1)
	}
	blobs, err := filestore.NewOS(cfg.Store.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Directorio de datos: %v\n", err)
		os.Exit(1)
	}
	runner := memory.NewTxRunner(memory.NewStore(blobs, log))
	uc := usecase.NewProductUseCase(runner, system.NewClock(loc), system.UUIDGenerator{}, cfg.Ledger.EnforceUniqueOnRename)

	created, skipped, err := seed(context.Background(), uc, items, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Seed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Productos creados: %d, omitidos: %d (%s)\n", created, skipped, cfg.Store.DataDir)
}
