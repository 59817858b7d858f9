package main

import (
	"context"
	"estimator/internal/config"
	"estimator/internal/tui"
	"estimator/pkg/apiclient"
	"estimator/pkg/docstore/boltstore"
	"estimator/pkg/domain"
	"estimator/pkg/export"
	"estimator/pkg/logger"
	"estimator/pkg/render"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// clientRun is the body of a client subcommand. The session is not loaded
// yet; commands that need the lists call Load themselves.
type clientRun func(ctx context.Context, cmd *cobra.Command, args []string,
	client *apiclient.Client, out *render.Renderer) error

// withClient opens the local mock database, builds an API client and runs
// fn. A mock banner is printed after fn when local data answered.
func withClient(cfg *config.Config, fn clientRun) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		// arguments were fine once we get here
		cmd.SilenceUsage = true

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		out, err := newRenderer(cmd)
		if err != nil {
			return err
		}

		store, err := boltstore.Open(cfg.Client.LocalDBPath)
		if err != nil {
			return fmt.Errorf("could not open local database: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Warn(ctx, "could not close local database", zap.Error(err))
			}
		}()

		client := apiclient.New(apiclient.NewOptions(cfg), apiclient.NewMockDB(store))
		if err := fn(ctx, cmd, args, client, out); err != nil {
			return err
		}

		return out.MockBanner(client.MockModeActive(ctx))
	}
}

func clientCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Talks to the estimator API, falling back to local demo data when it is unreachable",
	}
	addOutputFlag(cmd)

	cmd.AddCommand(
		clientMaterialsCommand(cfg),
		&cobra.Command{
			Use:   "profiles",
			Short: "Lists machine profiles",
			Args:  cobra.NoArgs,
			RunE: withClient(cfg, func(ctx context.Context, _ *cobra.Command, _ []string,
				client *apiclient.Client, out *render.Renderer) error {
				profiles, err := client.MachineProfiles(ctx)
				if err != nil {
					return err
				}

				return out.MachineProfiles(profiles)
			}),
		},
		&cobra.Command{
			Use:   "parts",
			Short: "Lists uploaded parts, newest first",
			Args:  cobra.NoArgs,
			RunE: withClient(cfg, func(ctx context.Context, _ *cobra.Command, _ []string,
				client *apiclient.Client, out *render.Renderer) error {
				parts, err := client.Parts(ctx)
				if err != nil {
					return err
				}

				return out.Parts(parts, "")
			}),
		},
		clientPartCommand(cfg),
		clientModelCommand(cfg),
		clientUploadCommand(cfg),
		clientJobCommand(cfg),
		clientMockCommand(cfg),
		&cobra.Command{
			Use:   "tui",
			Short: "Browses parts and estimates interactively",
			Args:  cobra.NoArgs,
			RunE: withClient(cfg, func(ctx context.Context, _ *cobra.Command, _ []string,
				client *apiclient.Client, _ *render.Renderer) error {
				// log lines would tear the alternate screen
				ctx = logger.WithLogger(ctx, zap.NewNop())

				program := tea.NewProgram(tui.NewModel(ctx, apiclient.NewSession(client)), tea.WithAltScreen())
				_, err := program.Run()

				return err
			}),
		},
	)

	return cmd
}

func clientPartCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "part <id>",
		Short: "Shows the cost breakdown of a part",
		Args:  cobra.ExactArgs(1),
		RunE: withClient(cfg, func(ctx context.Context, cmd *cobra.Command, args []string,
			client *apiclient.Client, out *render.Renderer) error {
			part, err := client.Part(ctx, domain.PartID(args[0]))
			if err != nil {
				return err
			}
			if err := out.Estimate(part); err != nil {
				return err
			}
			if part.HasModel() {
				if err := out.Message("Model: " + client.ModelURL(part.ID, "")); err != nil {
					return err
				}
			}

			pdfPath, _ := cmd.Flags().GetString("pdf")
			if pdfPath == "" {
				return nil
			}
			if err := writeQuote(ctx, client, part, pdfPath); err != nil {
				return err
			}

			return out.Message("Quote written to " + pdfPath)
		}),
	}
	cmd.Flags().String("pdf", "", "Also write a PDF quote of the estimate to this file")

	return cmd
}

func writeQuote(ctx context.Context, client *apiclient.Client, part *domain.Part, path string) error {
	quote := export.Quote{Part: part, IssuedAt: time.Now()}
	// the material only decorates the quote
	if materials, err := client.Materials(ctx); err == nil {
		for i := range materials {
			if materials[i].ID == part.MaterialID {
				quote.Material = &materials[i]

				break
			}
		}
	} else {
		logger.Warn(ctx, "could not list materials for quote", zap.Error(err))
	}

	return writeFile(path, func(w io.Writer) error {
		return export.QuotePDF(w, quote)
	})
}

// writeFile creates path, parent directories included, and removes it again
// when write fails.
func writeFile(path string, write func(w io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("could not create %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)

		return err
	}

	return f.Close()
}

func clientMaterialsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "Lists materials",
		Args:  cobra.NoArgs,
		RunE: withClient(cfg, func(ctx context.Context, _ *cobra.Command, _ []string,
			client *apiclient.Client, out *render.Renderer) error {
			materials, err := client.Materials(ctx)
			if err != nil {
				return err
			}

			return out.Materials(materials)
		}),
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Creates a material",
		Args:  cobra.NoArgs,
		RunE: withClient(cfg, func(ctx context.Context, cmd *cobra.Command, _ []string,
			client *apiclient.Client, out *render.Renderer) error {
			input := domain.MaterialInput{}
			input.Code, _ = cmd.Flags().GetString("code")
			input.Name, _ = cmd.Flags().GetString("name")
			input.DensityGCm3, _ = cmd.Flags().GetFloat64("density")
			input.PricePerKg, _ = cmd.Flags().GetFloat64("price")
			if cmd.Flags().Changed("allowance") {
				allowance, _ := cmd.Flags().GetFloat64("allowance")
				input.AllowanceMM = &allowance
			}

			material, err := client.CreateMaterial(ctx, input)
			if err != nil {
				return err
			}

			return out.Materials([]domain.Material{*material})
		}),
	}
	add.Flags().String("code", "", "Material code, e.g. AISI-1040")
	add.Flags().String("name", "", "Material name")
	add.Flags().Float64("density", 0, "Density in g/cm3")
	add.Flags().Float64("price", 0, "Price per kg")
	add.Flags().Float64("allowance", 0, "Machining allowance in mm")
	_ = add.MarkFlagRequired("code")
	_ = add.MarkFlagRequired("name")
	_ = add.MarkFlagRequired("density")
	_ = add.MarkFlagRequired("price")
	cmd.AddCommand(add)

	return cmd
}

func clientModelCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model <id> <file>",
		Short: "Downloads the preview model of a part",
		Args:  cobra.ExactArgs(2),
		RunE: withClient(cfg, func(ctx context.Context, _ *cobra.Command, args []string,
			client *apiclient.Client, out *render.Renderer) error {
			data, contentType, err := client.Model(ctx, domain.PartID(args[0]))
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[1], data, 0o600); err != nil {
				return fmt.Errorf("could not write model: %w", err)
			}

			return out.Message(fmt.Sprintf("Saved %d bytes of %s to %s", len(data), contentType, args[1]))
		}),
	}

	return cmd
}

func clientUploadCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Uploads a STEP file and follows its analysis",
		Args:  cobra.ExactArgs(1),
		RunE: withClient(cfg, func(ctx context.Context, cmd *cobra.Command, args []string,
			client *apiclient.Client, out *render.Renderer) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("could not read %s: %w", args[0], err)
			}
			materialID, _ := cmd.Flags().GetInt64("material")
			profileID, _ := cmd.Flags().GetString("machine-profile")
			wait, _ := cmd.Flags().GetBool("wait")

			session := apiclient.NewSession(client)
			job, err := session.Upload(ctx, apiclient.UploadInput{
				Filename:         filepath.Base(args[0]),
				Data:             data,
				MaterialID:       domain.MaterialID(materialID),
				MachineProfileID: profileID,
			})
			if err != nil {
				return err
			}
			if !wait {
				return out.Job(job)
			}

			return followJob(ctx, session, cfg, out)
		}),
	}
	cmd.Flags().Int64("material", 0, "Material ID")
	cmd.Flags().String("machine-profile", domain.DefaultMachineProfileID, "Machine profile ID")
	cmd.Flags().Bool("wait", true, "Wait for the analysis and print the estimate")
	_ = cmd.MarkFlagRequired("material")

	return cmd
}

// followJob polls the session's active job, printing its banner in text
// mode, then renders the estimate of its part.
func followJob(ctx context.Context, session *apiclient.Session, cfg *config.Config, out *render.Renderer) error {
	job, err := session.FollowActiveJob(ctx, cfg.Client.PollInterval, func(job *domain.AnalysisJob, err error) {
		if err != nil {
			logger.Warn(ctx, "could not poll job", zap.Error(err))

			return
		}
		if out.Format() == render.FormatText {
			_ = out.Job(job)
		}
	})
	if err != nil {
		return err
	}
	if job == nil {
		return nil
	}

	snap := session.Snapshot()
	if out.Format() != render.FormatText {
		return out.Estimate(snap.SelectedPart)
	}
	if snap.Error != "" {
		_ = out.Error(snap.Error)
	}
	if err := out.Estimate(snap.SelectedPart); err != nil {
		return err
	}
	if url := session.ModelURL(); url != "" {
		return out.Message("Model: " + url)
	}

	return nil
}

func clientJobCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job <id>",
		Short: "Shows an analysis job",
		Args:  cobra.ExactArgs(1),
		RunE: withClient(cfg, func(ctx context.Context, cmd *cobra.Command, args []string,
			client *apiclient.Client, out *render.Renderer) error {
			id := domain.JobID(args[0])
			if wait, _ := cmd.Flags().GetBool("wait"); wait {
				job, err := client.WaitForJob(ctx, id, cfg.Client.PollInterval, nil)
				if err != nil {
					return err
				}

				return out.Job(job)
			}

			job, err := client.Job(ctx, id)
			if err != nil {
				return err
			}

			return out.Job(job)
		}),
	}
	cmd.Flags().Bool("wait", false, "Poll until the job completes or fails")

	return cmd
}

func clientMockCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Inspects or clears the local demo data",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Reports whether local demo mode is active",
			Args:  cobra.NoArgs,
			RunE: withClient(cfg, func(ctx context.Context, _ *cobra.Command, _ []string,
				client *apiclient.Client, out *render.Renderer) error {
				active := client.MockModeActive(ctx)
				if out.Format() != render.FormatText {
					return out.Data(map[string]bool{"active": active})
				}
				if !active {
					return out.Message("Connected mode: the API answered the last request.")
				}

				return nil
			}),
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Drops all local demo data and leaves demo mode",
			Args:  cobra.NoArgs,
			RunE: withClient(cfg, func(ctx context.Context, _ *cobra.Command, _ []string,
				client *apiclient.Client, out *render.Renderer) error {
				session := apiclient.NewSession(client)
				if err := session.ClearMock(ctx); err != nil {
					return err
				}

				snap := session.Snapshot()
				if snap.Error != "" {
					return out.Error(snap.Error)
				}

				return out.Message(fmt.Sprintf("Local demo data cleared, %d parts listed.", len(snap.Parts)))
			}),
		},
	)

	return cmd
}
