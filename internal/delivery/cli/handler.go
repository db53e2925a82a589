package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yourusername/storefront/internal/domain/entity"
	"github.com/yourusername/storefront/internal/usecase"
)

// Handler CLI buyruqlari uchun handler (taqdimot qatlami)
type Handler struct {
	productUseCase usecase.ProductUseCase
	adminUseCase   usecase.AdminUseCase
	gate           usecase.CredentialGate
	newCart        func() usecase.CartUseCase
	logger         *zap.Logger
	out            io.Writer
}

// NewHandler yangi CLI handler yaratish
func NewHandler(
	productUseCase usecase.ProductUseCase,
	adminUseCase usecase.AdminUseCase,
	gate usecase.CredentialGate,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		productUseCase: productUseCase,
		adminUseCase:   adminUseCase,
		gate:           gate,
		newCart:        func() usecase.CartUseCase { return usecase.NewCartUseCase(logger) },
		logger:         logger,
		out:            os.Stdout,
	}
}

// SetOutput chiqish oqimini almashtirish (testlar uchun)
func (h *Handler) SetOutput(w io.Writer) {
	h.out = w
}

// Commands storefront va admin buyruqlari
func (h *Handler) Commands() []*cobra.Command {
	return []*cobra.Command{
		h.listCmd(),
		h.categoriesCmd(),
		h.checkoutCmd(),
		h.adminCmd(),
	}
}

func (h *Handler) listCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the storefront catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := h.productUseCase.Init(ctx); err != nil {
				return err
			}
			text, err := h.productUseCase.GetProductsAsText(ctx, category)
			if err != nil {
				fmt.Fprintln(h.out, "The store is empty.")
				return nil
			}
			fmt.Fprint(h.out, text)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", entity.CategoryAll, "category filter (all, cars, real-estate, services, ...)")
	return cmd
}

func (h *Handler) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := h.productUseCase.Init(ctx); err != nil {
				return err
			}
			categories, err := h.productUseCase.Categories(ctx)
			if err != nil {
				return err
			}
			for _, c := range categories {
				fmt.Fprintln(h.out, c)
			}
			return nil
		},
	}
}

// checkoutCmd savat faqat shu buyruq davomida yashaydi
func (h *Handler) checkoutCmd() *cobra.Command {
	var remove []int
	cmd := &cobra.Command{
		Use:   "checkout <product-id>...",
		Short: "Add products to a cart and show the checkout summary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := h.productUseCase.Init(ctx); err != nil {
				return err
			}

			cart := h.newCart()
			for _, id := range args {
				product, err := h.productUseCase.AddToCart(ctx, cart, id)
				switch {
				case errors.Is(err, entity.ErrProductUnavailable):
					fmt.Fprintf(h.out, "skipped %s: sold out\n", id)
				case errors.Is(err, entity.ErrNotFound):
					fmt.Fprintf(h.out, "skipped %s: no such product\n", id)
				case err != nil:
					return err
				default:
					fmt.Fprintf(h.out, "added %s (%d DA)\n", product.Name, product.Price)
				}
			}
			for _, idx := range remove {
				cart.RemoveItem(idx)
			}

			for i, item := range cart.Items() {
				fmt.Fprintf(h.out, "  %d. %s - %d DA\n", i, item.Name, item.Price)
			}

			summary, err := cart.Checkout()
			if errors.Is(err, entity.ErrEmptyCart) {
				fmt.Fprintln(h.out, "The cart is empty.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(h.out, "Items: %d\nTotal: %d DA\n", summary.Count, summary.Total)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&remove, "remove", nil, "cart positions to remove before checkout")
	return cmd
}

func (h *Handler) adminCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Catalog administration (password protected)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "lockout" {
				return nil
			}
			return h.login(cmd.Context(), password)
		},
	}
	cmd.PersistentFlags().StringVarP(&password, "password", "p", "", "admin password")

	cmd.AddCommand(
		h.adminLockoutCmd(),
		h.adminListCmd(),
		h.adminStatsCmd(),
		h.adminAddCmd(),
		h.adminEditCmd(),
		h.adminDeleteCmd(),
		h.adminResetCmd(),
		h.adminImportCmd(),
		h.adminExportCmd(),
		h.adminLogCmd(),
	)
	return cmd
}

// login lockout -> verify -> reset yoki failure tartibida
func (h *Handler) login(ctx context.Context, password string) error {
	result, err := h.adminUseCase.Login(ctx, password)
	var locked *entity.LockedOutError
	if errors.As(err, &locked) {
		return fmt.Errorf("system locked after too many attempts, try again in %d minutes", locked.RemainingMinutes)
	}
	if err != nil {
		return err
	}
	if result.Granted {
		return nil
	}
	if result.Outcome == entity.LockedOut {
		return errors.New("wrong password, system locked")
	}
	return errors.New("wrong password, attempts are limited")
}

func (h *Handler) adminLockoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lockout",
		Short: "Show login lockout status",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := h.gate.CheckLockout(cmd.Context())
			if err != nil {
				return err
			}
			if status.Locked {
				fmt.Fprintf(h.out, "locked, %d minutes remaining\n", status.RemainingMinutes)
				return nil
			}
			fmt.Fprintln(h.out, "open")
			return nil
		},
	}
}

func (h *Handler) adminListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all products with ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := h.adminUseCase.ListProducts(cmd.Context())
			if err != nil {
				return err
			}
			if len(products) == 0 {
				fmt.Fprintln(h.out, "The store is empty!")
				return nil
			}
			for _, p := range products {
				stock := "available"
				if !p.Availability {
					stock = "sold out"
				}
				fmt.Fprintf(h.out, "%s\t%s\t%d DA\t%s\t%s\n", p.ID, p.Name, p.Price, p.Category, stock)
			}
			return nil
		},
	}
}

func (h *Handler) adminStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show product count and total catalog value",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := h.adminUseCase.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(h.out, "Products: %d\nTotal value: %d DA\n", stats.Count, stats.TotalValue)
			return nil
		},
	}
}

func (h *Handler) adminAddCmd() *cobra.Command {
	var draft entity.ProductDraft
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := h.adminUseCase.CreateProduct(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(h.out, "created %s\n", product.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&draft.Name, "name", "", "product name")
	cmd.Flags().Int64Var(&draft.Price, "price", 0, "price")
	cmd.Flags().StringVar(&draft.Img, "img", "", "image URL")
	cmd.Flags().StringVar(&draft.Category, "category", entity.CategoryCars, "category")
	cmd.Flags().StringVar(&draft.Badge, "badge", "", "badge label")
	return cmd
}

func (h *Handler) adminEditCmd() *cobra.Command {
	var patch entity.ProductPatch
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace name, price, image and availability of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := h.adminUseCase.UpdateProduct(cmd.Context(), args[0], patch)
			if err != nil {
				return err
			}
			fmt.Fprintf(h.out, "updated %s\n", product.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&patch.Name, "name", "", "product name")
	cmd.Flags().Int64Var(&patch.Price, "price", 0, "price")
	cmd.Flags().StringVar(&patch.Img, "img", "", "image URL")
	cmd.Flags().BoolVar(&patch.Availability, "available", true, "product is in stock")
	return cmd
}

func (h *Handler) adminDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.adminUseCase.DeleteProduct(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(h.out, "deleted %s\n", args[0])
			return nil
		},
	}
}

func (h *Handler) adminResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard all changes and restore the default catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to reset without --yes")
			}
			if err := h.adminUseCase.ResetStore(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(h.out, "catalog restored to defaults")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}

func (h *Handler) adminImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Replace the catalog with products from a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			n, err := h.adminUseCase.ImportCatalog(cmd.Context(), data, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(h.out, "imported %d products\n", n)
			return nil
		},
	}
}

func (h *Handler) adminExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Write the catalog to a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			if err := h.adminUseCase.ExportCatalog(cmd.Context(), f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
}

func (h *Handler) adminLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show admin actions of this session",
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := h.adminUseCase.Actions(cmd.Context())
			if err != nil {
				return err
			}
			for _, a := range actions {
				fmt.Fprintf(h.out, "%s\t%s\t%s\n", a.Timestamp.Format("2006-01-02 15:04"), a.Action, a.Details)
			}
			return nil
		},
	}
}
