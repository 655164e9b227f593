package service

import (
	"context"
	"strings"
	"time"

	"almacenpos/internal/apperror"
	"almacenpos/internal/dto"
	"almacenpos/internal/model"
	"almacenpos/internal/repository"

	"github.com/google/uuid"
)

// ProductoService owns the product catalog and is the ONLY component that
// mutates stock. Compras and ventas route every stock change through
// ApplyStockDelta so the non-negative floor is enforced in one place.
type ProductoService interface {
	List(ctx context.Context, userID string) ([]model.Producto, error)
	Get(ctx context.Context, userID, productoID string) (*model.Producto, error)
	Crear(ctx context.Context, userID string, req dto.CrearProductoRequest) (*model.Producto, error)
	Actualizar(ctx context.Context, userID, productoID string, req dto.ActualizarProductoRequest) (*model.Producto, error)
	Eliminar(ctx context.Context, userID, productoID string) error

	// HasStock is advisory only: it does not reserve anything. Callers must
	// still rely on ApplyStockDelta's floor check at commit time.
	HasStock(ctx context.Context, userID, productoID string, qty int) (*model.Producto, error)
	// ApplyStockDelta applies a signed stock change, rejecting any delta
	// that would leave StockActual negative.
	ApplyStockDelta(ctx context.Context, userID, productoID string, delta int) (*model.Producto, error)
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) List(ctx context.Context, userID string) ([]model.Producto, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, userID)
}

func (s *productoService) Get(ctx context.Context, userID, productoID string) (*model.Producto, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, userID, productoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("Producto no encontrado.")
	}
	return p, nil
}

func (s *productoService) Crear(ctx context.Context, userID string, req dto.CrearProductoRequest) (*model.Producto, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, apperror.Validation("El nombre es obligatorio")
	}
	if req.StockInicial < 0 {
		return nil, apperror.Validation("Stock inicial inválido")
	}
	costo, err := parseMonto(req.PrecioCosto)
	if err != nil || costo.IsNegative() {
		return nil, apperror.Validation("Precio de costo inválido")
	}
	venta, err := parseMonto(req.PrecioVenta)
	if err != nil || venta.IsNegative() {
		return nil, apperror.Validation("Precio de venta inválido")
	}

	now := time.Now().UTC()
	p := model.Producto{
		ID:          uuid.NewString(),
		Nombre:      nombre,
		Categoria:   strings.TrimSpace(req.Categoria),
		PrecioCosto: round2(costo),
		PrecioVenta: round2(venta),
		StockActual: req.StockInicial,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Insert(ctx, userID, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *productoService) Actualizar(ctx context.Context, userID, productoID string, req dto.ActualizarProductoRequest) (*model.Producto, error) {
	p, err := s.Get(ctx, userID, productoID)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		nombre := strings.TrimSpace(*req.Nombre)
		if nombre == "" {
			return nil, apperror.Validation("El nombre es obligatorio")
		}
		p.Nombre = nombre
	}
	if req.Categoria != nil {
		p.Categoria = strings.TrimSpace(*req.Categoria)
	}
	if req.PrecioCosto != nil {
		costo, err := parseMonto(*req.PrecioCosto)
		if err != nil || costo.IsNegative() {
			return nil, apperror.Validation("Precio de costo inválido")
		}
		p.PrecioCosto = round2(costo)
	}
	if req.PrecioVenta != nil {
		venta, err := parseMonto(*req.PrecioVenta)
		if err != nil || venta.IsNegative() {
			return nil, apperror.Validation("Precio de venta inválido")
		}
		p.PrecioVenta = round2(venta)
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, userID, *p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productoService) Eliminar(ctx context.Context, userID, productoID string) error {
	if err := requireUserID(userID); err != nil {
		return err
	}
	return s.repo.Remove(ctx, userID, productoID)
}

func (s *productoService) HasStock(ctx context.Context, userID, productoID string, qty int) (*model.Producto, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, userID, productoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("Producto no encontrado.")
	}
	if qty <= 0 {
		return nil, apperror.Validation("Cantidad inválida.")
	}
	if p.StockActual < qty {
		return nil, apperror.Invariantf("Stock insuficiente para %q. (Stock: %d)", p.Nombre, p.StockActual)
	}
	return p, nil
}

func (s *productoService) ApplyStockDelta(ctx context.Context, userID, productoID string, delta int) (*model.Producto, error) {
	if err := requireUserID(userID); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, userID, productoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("Producto no encontrado.")
	}
	next := p.StockActual + delta
	if next < 0 {
		return nil, apperror.Invariant("Stock resultante inválido.")
	}
	p.StockActual = next
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, userID, *p); err != nil {
		return nil, err
	}
	return p, nil
}
