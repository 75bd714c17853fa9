package simmeta

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

const notUsed = "not used"

// Notation maps simulation parameter names to their symbols in the paper.
var Notation = map[string]string{
	"action_radius_factor":              `r_a`,
	"adhesion_scale_parameter":          `c_a`,
	"alpha_H_D_DOX":                     notUsed,
	"alpha_H_D_TRA":                     notUsed,
	"alpha_Q_D_N":                       `a_{Q \rightarrow D}`,
	"alpha_Q_SG2_N":                     `c_{Q \rightarrow SG2}`,
	"alpha_Q_SG2_TRA":                   `\lambda_{Q \rightarrow SG2}`,
	"alpha_SG2_D_DOX":                   `c_{SG2 \rightarrow D}`,
	"alpha_SG2_SG2_DOX":                 `c_{SG2 \rightarrow SG2}`,
	"apical_growth_gradient_weight":     `w_1`,
	"apical_growth_old_weight":          `w_2`,
	"apical_growth_random_weight":       `w_3`,
	"apical_growth_speed":               notUsed,
	"base_rate_H_D":                     `r_{H \rightarrow D}`,
	"cell_nuclear_radius":               `r_n`,
	"cell_radius":                       `r_p`,
	"cell_radius_sigma":                 `\sigma_{r_p}`,
	"decay_rate_dox":                    `\lambda_{d}`,
	"decay_rate_nutrients":              `\lambda_{n}`,
	"decay_rate_tra":                    `\lambda_{t}`,
	"decay_rate_vegf":                   `\lambda_{v}`,
	"default_vessel_length":             notUsed,
	"diffusion_dox":                     `D_{d}`,
	"diffusion_nutrients":               `D_{n}`,
	"diffusion_resolution_dox":          `(l/h_{d})`,
	"diffusion_resolution_nutrients":    `(l/h_{n})`,
	"diffusion_resolution_tra":          `(l/h_{t})`,
	"diffusion_resolution_vegf":         `(l/h_{v})`,
	"diffusion_tra":                     `D_{t}`,
	"diffusion_vegf":                    `D_{v}`,
	"dox_consumption_rate_tcell":        `\alpha_{d}`,
	"dox_supply_rate_vessel":            `\beta_{d}`,
	"duration_apoptosis":                notUsed,
	"duration_cell_cycle":               `T_{SG2}`,
	"duration_growth_phase":             `T_{G1}`,
	"gamma_H_D_DOX":                     notUsed,
	"gamma_H_D_TRA":                     notUsed,
	"gamma_Q_D_N":                       `gamma\_Q\_D\_N (not present in paper)`,
	"gamma_SG2_D_DOX":                   `gamma\_SG2\_D\_DOX (not present in paper)`,
	"gamma_SG2_SG2_DOX":                 `gamma\_SG2\_SG2\_DOX (not present in paper)`,
	"hypoxic_threshold":                 `u_n^H`,
	"initial_concentration_dox":         `u_n(t=0)`,
	"initial_concentration_nutrients":   `u_n(t=0)`,
	"initial_concentration_tra":         `u_t(t=0)`,
	"initial_concentration_vegf":        `u_v(t=0)`,
	"k_H_D_DOX":                         notUsed,
	"k_H_D_TRA":                         notUsed,
	"k_Q_D_N":                           `k_{Q \rightarrow D}`,
	"k_SG2_D_DOX":                       notUsed,
	"k_SG2_SG2_DOX":                     notUsed,
	"max_speed":                         notUsed,
	"min_dist_to_bifurcation":           `d_{branch}`,
	"min_dist_to_tip_cell":              `d_{tip}`,
	"nutrient_consumption_rate_tcell":   `\alpha_{n}`,
	"nutrient_supply_rate_vessel":       `\beta_{n}`,
	"repulsive_scale_parameter":         `c_r`,
	"secretion_rate_vegf":               notUsed,
	"sprouting_probability":             `p_{s,rate}`,
	"threshold_H_D_DOX":                 `u_d^{H \rightarrow D}`,
	"threshold_H_D_TRA":                 `u_t^{H \rightarrow D}`,
	"threshold_Q_D_N":                   `u_n^{Q \rightarrow D}`,
	"threshold_Q_SG2_N":                 `u_n^{Q \rightarrow SG2}`,
	"threshold_SG2_D_DOX":               `u_d^{SG2 \rightarrow D}`,
	"threshold_SG2_SG2_DOX":             `u_d^{SG2 \rightarrow SG2}`,
	"total_sim_time":                    `T`,
	"tra_consumption_rate_tcell":        `\alpha_{t}`,
	"tra_supply_rate_vessel":            `\beta_{t}`,
	"uptake_rate_glucose":               notUsed,
	"vegf_consumption_rate_vessel":      `\beta_{v}`,
	"vegf_grad_threshold_apical_growth": `\nabla u_v^{thres}`,
	"vegf_supply_rate_tcell":            `\alpha_{v}`,
	"vegf_threshold_sprouting":          `u_v^{thres}`,
	"viscosity":                         `\eta (not present in paper)`,
}

// Translate renames parameters to their notation. Unknown and unused
// parameters are dropped. When two parameters share a symbol the later
// value wins but the symbol keeps its first position.
func Translate(ps Params) Params {
	var out Params
	pos := make(map[string]int)
	for _, p := range ps {
		sym, ok := Notation[p.Key]
		if !ok || sym == notUsed {
			continue
		}
		if i, seen := pos[sym]; seen {
			out[i].Value = p.Value
			continue
		}
		pos[sym] = len(out)
		out = append(out, Param{Key: sym, Value: p.Value})
	}
	return out
}

// EncodeLatex writes one "$key = value$," per line and ends the list
// with a period instead of the last comma.
func EncodeLatex(w io.Writer, ps Params) error {
	var buf bytes.Buffer
	for _, p := range ps {
		fmt.Fprintf(&buf, "$%s = %s$,\n", p.Key, p.Value)
	}
	out := buf.Bytes()
	if len(out) >= 2 {
		out = append(out[:len(out)-2], '.')
	}
	_, err := w.Write(out)
	return err
}

func WriteLatex(path string, ps Params) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeLatex(f, ps); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
