package booking

import (
	"time"

	"github.com/nareguabarber/naregua-api/internal/models"
)

// Duração assumida quando um agendamento antigo não tem snapshot
const fallbackDurationMin = 30

type AvailabilityInput struct {
	// Dia consultado, meia-noite no fuso da loja
	Day      time.Time
	BarberID uint
	Schedule Schedule
	// Agendamentos do barbeiro no dia (qualquer status; cancelados são ignorados)
	Existing []models.Appointment
	Now      time.Time
}

type Slot struct {
	Time      string    `json:"time"`
	Start     time.Time `json:"start"`
	Available bool      `json:"available"`
}

// ComputeAvailableSlots enumera a grade de horários do dia.
//
// A grade vai de open até close (exclusivo) em passos do intervalo
// configurado. Um slot fica indisponível quando já passou ou quando o
// instante candidato cai dentro de [início, início+duração) de um
// agendamento não cancelado do mesmo barbeiro. A duração considerada é
// sempre a do agendamento existente: um serviço novo mais longo não
// bloqueia slots seguintes da grade.
func ComputeAvailableSlots(in AvailabilityInput) ([]Slot, error) {
	open, err := ParseHM(in.Schedule.OpenTime, in.Day)
	if err != nil {
		return nil, err
	}
	close_, err := ParseHM(in.Schedule.CloseTime, in.Day)
	if err != nil {
		return nil, err
	}

	interval := in.Schedule.SlotIntervalMin
	if interval <= 0 {
		interval = 60
	}
	step := time.Duration(interval) * time.Minute

	type window struct {
		start time.Time
		end   time.Time
	}

	var busy []window
	for _, ap := range in.Existing {
		if ap.BarberID != in.BarberID || Status(ap.Status) == StatusCancelled {
			continue
		}
		y, m, d := ap.StartTime.Date()
		dy, dm, dd := in.Day.Date()
		if y != dy || m != dm || d != dd {
			continue
		}
		dur := ap.ServiceDurationMin
		if dur <= 0 {
			dur = fallbackDurationMin
		}
		busy = append(busy, window{
			start: ap.StartTime,
			end:   ap.StartTime.Add(time.Duration(dur) * time.Minute),
		})
	}

	var slots []Slot
	for cur := open; cur.Before(close_); cur = cur.Add(step) {
		available := !cur.Before(in.Now)

		if available {
			for _, w := range busy {
				if !cur.Before(w.start) && cur.Before(w.end) {
					available = false
					break
				}
			}
		}

		slots = append(slots, Slot{
			Time:      cur.Format("15:04"),
			Start:     cur,
			Available: available,
		})
	}

	return slots, nil
}

// SlotIsBookable confere um único horário contra a mesma regra da grade.
// Usado na criação para revalidar o slot no momento da escrita.
func SlotIsBookable(start time.Time, in AvailabilityInput) (bool, error) {
	slots, err := ComputeAvailableSlots(in)
	if err != nil {
		return false, err
	}
	for _, s := range slots {
		if s.Start.Equal(start) {
			return s.Available, nil
		}
	}
	// fora da grade (antes da abertura, depois do fechamento ou desalinhado)
	return false, nil
}
