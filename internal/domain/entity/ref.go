package entity

// Ref é uma referência validada na escrita: quando não nula, aponta para um
// registo existente no momento em que foi gravada (ex.: Local -> Obra).
type Ref string

// UncheckedRef é uma referência aceite sem validação. Pode ficar pendurada:
// movimentos e local_id de ativos/materiais nunca são verificados.
type UncheckedRef string

// NewRef converte um id opcional numa Ref (nil ou vazio = sem referência).
func NewRef(id *string) *Ref {
	if id == nil || *id == "" {
		return nil
	}
	r := Ref(*id)
	return &r
}

// NewUncheckedRef converte um id opcional numa UncheckedRef (nil ou vazio = sem referência).
func NewUncheckedRef(id *string) *UncheckedRef {
	if id == nil || *id == "" {
		return nil
	}
	r := UncheckedRef(*id)
	return &r
}

// RefString devolve o id como *string (nil se não houver referência).
func RefString[T ~string](r *T) *string {
	if r == nil {
		return nil
	}
	s := string(*r)
	return &s
}
