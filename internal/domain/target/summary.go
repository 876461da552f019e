package target

// Summary resumen de la distribución para la vista previa.
type Summary struct {
	Total   float64
	Average float64
	Max     float64
	Min     float64
}

// Summarize reduce el mapa de metas diarias. Un mapa vacío devuelve ceros.
func Summarize(t DailyTargets) Summary {
	if len(t) == 0 {
		return Summary{}
	}
	first := true
	var s Summary
	// Orden cronológico para que la suma sea reproducible bit a bit.
	for _, k := range t.Keys() {
		v := t[k]
		s.Total += v
		if first {
			s.Max, s.Min = v, v
			first = false
			continue
		}
		if v > s.Max {
			s.Max = v
		}
		if v < s.Min {
			s.Min = v
		}
	}
	s.Average = s.Total / float64(len(t))
	return s
}
