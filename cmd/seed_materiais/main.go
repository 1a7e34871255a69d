// seed_materiais gera um script SQL para carregar o catálogo de materiais
// a partir de uma folha exportada em CSV (separador ';', cabeçalho na 1.ª linha).
//
// Colunas: codigo;descricao;unidade;stock_minimo;stock_atual
//
// Uso: go run ./cmd/seed_materiais [-latin1] [ruta/materiais.csv]
// Por omissão lê materiais.csv do diretório atual.
// Escreve: internal/infrastructure/postgres/migrations/002_seed_materiais.sql
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type linha struct {
	codigo, descricao, unidade string
	minimo, atual              decimal.Decimal
}

func main() {
	latin1 := flag.Bool("latin1", false, "CSV em ISO-8859-1 (exportação do Excel)")
	flag.Parse()

	csvPath := "materiais.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var in io.Reader = f
	if *latin1 {
		in = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}

	linhas, err := ler(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ler CSV: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_materiais.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Criar ficheiro: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo de materiais\n")
	fmt.Fprintf(out, "-- Gerado a partir de %s\n\n", filepath.Base(csvPath))
	for _, l := range linhas {
		fmt.Fprintf(out, "INSERT INTO materiais (id, codigo, descricao, unidade, stock_minimo, stock_atual)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', %s, %s)\n",
			uuid.New(), escapeSQL(l.codigo), escapeSQL(l.descricao), escapeSQL(l.unidade),
			l.minimo.String(), l.atual.String())
		out.WriteString("ON CONFLICT (codigo) DO UPDATE SET descricao = EXCLUDED.descricao, unidade = EXCLUDED.unidade, stock_minimo = EXCLUDED.stock_minimo;\n")
	}

	fmt.Printf("Gerado %s: %d materiais\n", outPath, len(linhas))
}

func ler(in io.Reader) ([]linha, error) {
	r := csv.NewReader(in)
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var out []linha
	seen := map[string]bool{}
	for n := 0; ; n++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if n == 0 || len(rec) < 2 {
			continue
		}
		l := linha{
			codigo:    strings.TrimSpace(rec[0]),
			descricao: strings.TrimSpace(rec[1]),
			unidade:   "unidade",
		}
		if l.codigo == "" || l.descricao == "" || seen[l.codigo] {
			continue
		}
		if len(rec) > 2 && strings.TrimSpace(rec[2]) != "" {
			l.unidade = strings.TrimSpace(rec[2])
		}
		if l.minimo, err = numero(rec, 3); err != nil {
			return nil, fmt.Errorf("linha %d: stock_minimo: %w", n+1, err)
		}
		if l.atual, err = numero(rec, 4); err != nil {
			return nil, fmt.Errorf("linha %d: stock_atual: %w", n+1, err)
		}
		seen[l.codigo] = true
		out = append(out, l)
	}
	return out, nil
}

// numero aceita vírgula decimal ("12,5"); coluna ausente ou vazia = 0.
func numero(rec []string, i int) (decimal.Decimal, error) {
	if i >= len(rec) {
		return decimal.Zero, nil
	}
	s := strings.ReplaceAll(strings.TrimSpace(rec[i]), ",", ".")
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
