package domain

// CartLine — одна позиция корзины покупателя.
// Корзина живёт только на стороне покупателя и на сервере не сохраняется:
// сюда попадает снимок товара в момент формирования заказа.
type CartLine struct {
	Name     string
	Price    int64 // минорные единицы
	Quantity int
}
