package services

import (
	"log"

	"github.com/google/uuid"
)

// PaymentGateway mengabstraksi penyedia pembayaran eksternal. Modul ini hanya
// memanggil refund; verifikasi pembayaran terjadi di luar (callback sudah
// terverifikasi sebelum sampai ke PaySuccess).
type PaymentGateway interface {
	// Refund mengembalikan dana untuk satu order dan memberi reference id.
	Refund(orderNumber string, amount float64) (string, error)
}

// LogGateway adalah implementasi default untuk development: tidak memanggil
// penyedia manapun, hanya mencatat dan mengembalikan reference id.
type LogGateway struct{}

func (LogGateway) Refund(orderNumber string, amount float64) (string, error) {
	ref := uuid.NewString()
	log.Printf("refund issued: order=%s amount=%.2f ref=%s", orderNumber, amount, ref)
	return ref, nil
}
