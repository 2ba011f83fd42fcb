package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dtroode/carechain-server/internal/model"
)

// GetConfig share-locks the config row so concurrent operations can read it
// while a pause toggle waits for them to finish.
func (t *pgTx) GetConfig(ctx context.Context) (model.LedgerConfig, error) {
	return t.getConfig(ctx, "FOR SHARE")
}

func (t *pgTx) GetConfigForUpdate(ctx context.Context) (model.LedgerConfig, error) {
	return t.getConfig(ctx, "FOR UPDATE")
}

func (t *pgTx) getConfig(ctx context.Context, lock string) (model.LedgerConfig, error) {
	var (
		cfg       model.LedgerConfig
		authority string
	)
	err := t.tx.QueryRow(ctx, `
		SELECT authority, paused, namespace, created_at
		FROM ledger_config
		WHERE address = $1
		`+lock, addr(model.ConfigAddress()),
	).Scan(&authority, &cfg.Paused, &cfg.Namespace, &cfg.CreatedAt)
	if err != nil {
		return model.LedgerConfig{}, mapError(err)
	}
	cfg.Authority = model.Identity(authority)
	cfg.CreatedAt = cfg.CreatedAt.UTC()
	return cfg, nil
}

func (t *pgTx) CreateConfig(ctx context.Context, cfg model.LedgerConfig) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO ledger_config (address, authority, paused, namespace, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		addr(model.ConfigAddress()), string(cfg.Authority), cfg.Paused, cfg.Namespace, cfg.CreatedAt,
	)
	return mapError(err)
}

func (t *pgTx) UpdateConfig(ctx context.Context, cfg model.LedgerConfig) error {
	return t.exec(ctx, `
		UPDATE ledger_config SET authority = $2, paused = $3, namespace = $4
		WHERE address = $1`,
		addr(model.ConfigAddress()), string(cfg.Authority), cfg.Paused, cfg.Namespace,
	)
}

func (t *pgTx) GetHospital(ctx context.Context, address model.Address) (model.Hospital, error) {
	var (
		h                       model.Hospital
		authority, registeredBy string
	)
	err := t.tx.QueryRow(ctx, `
		SELECT address, authority, name, kms_ref, registered_by, created_at
		FROM hospitals
		WHERE address = $1
		FOR UPDATE`, addr(address),
	).Scan(fixedBytes(h.Address[:]), &authority, &h.Name, &h.KMSRef, &registeredBy, &h.CreatedAt)
	if err != nil {
		return model.Hospital{}, mapError(err)
	}
	h.Authority = model.Identity(authority)
	h.RegisteredBy = model.Identity(registeredBy)
	h.CreatedAt = h.CreatedAt.UTC()
	return h, nil
}

func (t *pgTx) CreateHospital(ctx context.Context, h model.Hospital) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO hospitals (address, authority, name, kms_ref, registered_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		addr(h.Address), string(h.Authority), h.Name, h.KMSRef, string(h.RegisteredBy), h.CreatedAt,
	)
	return mapError(err)
}

func (t *pgTx) GetPatient(ctx context.Context, address model.Address) (model.Patient, error) {
	var (
		p     model.Patient
		owner string
	)
	err := t.tx.QueryRow(ctx, `
		SELECT address, owner, did, created_at, updated_at
		FROM patients
		WHERE address = $1
		FOR UPDATE`, addr(address),
	).Scan(fixedBytes(p.Address[:]), &owner, &p.DID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.Patient{}, mapError(err)
	}
	p.Owner = model.Identity(owner)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

func (t *pgTx) CreatePatient(ctx context.Context, p model.Patient) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO patients (address, owner, did, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		addr(p.Address), string(p.Owner), p.DID, p.CreatedAt, p.UpdatedAt,
	)
	return mapError(err)
}

func (t *pgTx) UpdatePatient(ctx context.Context, p model.Patient) error {
	return t.exec(ctx, `
		UPDATE patients SET did = $2, updated_at = $3
		WHERE address = $1`,
		addr(p.Address), p.DID, p.UpdatedAt,
	)
}

func (t *pgTx) GetSequence(ctx context.Context, address model.Address) (model.SequenceCounter, error) {
	var (
		c    model.SequenceCounter
		next int64
	)
	err := t.tx.QueryRow(ctx, `
		SELECT address, patient, next_seq
		FROM patient_sequences
		WHERE address = $1
		FOR UPDATE`, addr(address),
	).Scan(fixedBytes(c.Address[:]), fixedBytes(c.Patient[:]), &next)
	if err != nil {
		return model.SequenceCounter{}, mapError(err)
	}
	c.Next = uint64(next)
	return c, nil
}

func (t *pgTx) CreateSequence(ctx context.Context, c model.SequenceCounter) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO patient_sequences (address, patient, next_seq)
		VALUES ($1, $2, $3)`,
		addr(c.Address), addr(c.Patient), int64(c.Next),
	)
	return mapError(err)
}

func (t *pgTx) UpdateSequence(ctx context.Context, c model.SequenceCounter) error {
	return t.exec(ctx, `
		UPDATE patient_sequences SET next_seq = $2
		WHERE address = $1`,
		addr(c.Address), int64(c.Next),
	)
}

func (t *pgTx) GetTrustee(ctx context.Context, address model.Address) (model.Trustee, error) {
	var (
		tr               model.Trustee
		trustee, addedBy string
	)
	err := t.tx.QueryRow(ctx, `
		SELECT address, patient, trustee, added_by, created_at, revoked, revoked_at
		FROM trustees
		WHERE address = $1
		FOR UPDATE`, addr(address),
	).Scan(fixedBytes(tr.Address[:]), fixedBytes(tr.Patient[:]), &trustee, &addedBy, &tr.CreatedAt, &tr.Revoked, &tr.RevokedAt)
	if err != nil {
		return model.Trustee{}, mapError(err)
	}
	tr.Trustee = model.Identity(trustee)
	tr.AddedBy = model.Identity(addedBy)
	tr.CreatedAt = tr.CreatedAt.UTC()
	tr.RevokedAt = utc(tr.RevokedAt)
	return tr, nil
}

func (t *pgTx) PutTrustee(ctx context.Context, tr model.Trustee) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO trustees (address, patient, trustee, added_by, created_at, revoked, revoked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (address) DO UPDATE SET
			added_by = EXCLUDED.added_by,
			created_at = EXCLUDED.created_at,
			revoked = EXCLUDED.revoked,
			revoked_at = EXCLUDED.revoked_at`,
		addr(tr.Address), addr(tr.Patient), string(tr.Trustee), string(tr.AddedBy), tr.CreatedAt, tr.Revoked, tr.RevokedAt,
	)
	return mapError(err)
}

func (t *pgTx) GetGrant(ctx context.Context, address model.Address) (model.Grant, error) {
	var (
		g                  model.Grant
		grantee, createdBy string
		scope              int16
	)
	err := t.tx.QueryRow(ctx, `
		SELECT address, patient, grantee, scope, created_by, created_at, expires_at, via_trustee, revoked, revoked_at
		FROM grants
		WHERE address = $1
		FOR UPDATE`, addr(address),
	).Scan(
		fixedBytes(g.Address[:]), fixedBytes(g.Patient[:]), &grantee, &scope, &createdBy,
		&g.CreatedAt, &g.ExpiresAt, &g.ViaTrustee, &g.Revoked, &g.RevokedAt,
	)
	if err != nil {
		return model.Grant{}, mapError(err)
	}
	g.Grantee = model.Identity(grantee)
	g.CreatedBy = model.Identity(createdBy)
	g.Scope = model.Scope(scope)
	g.CreatedAt = g.CreatedAt.UTC()
	g.ExpiresAt = utc(g.ExpiresAt)
	g.RevokedAt = utc(g.RevokedAt)
	return g, nil
}

func (t *pgTx) PutGrant(ctx context.Context, g model.Grant) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO grants (address, patient, grantee, scope, created_by, created_at, expires_at, via_trustee, revoked, revoked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (address) DO UPDATE SET
			created_by = EXCLUDED.created_by,
			created_at = EXCLUDED.created_at,
			expires_at = EXCLUDED.expires_at,
			via_trustee = EXCLUDED.via_trustee,
			revoked = EXCLUDED.revoked,
			revoked_at = EXCLUDED.revoked_at`,
		addr(g.Address), addr(g.Patient), string(g.Grantee), int16(g.Scope), string(g.CreatedBy),
		g.CreatedAt, g.ExpiresAt, g.ViaTrustee, g.Revoked, g.RevokedAt,
	)
	return mapError(err)
}

const recordColumns = `address, patient, hospital, uploader, cid_enc, meta_mime, meta_cid, size_bytes, digest,
	edek_root, edek_root_algo, edek_patient, edek_patient_algo, edek_hospital, edek_hospital_algo,
	kms_ref, seq, enc_version, enc_algo, created_at, updated_at, patient_identity, hospital_identity,
	hospital_id, hospital_name, doctor_name, doctor_id, diagnosis, keywords, description`

func (t *pgTx) GetRecord(ctx context.Context, address model.Address) (model.Record, error) {
	var (
		r                                           model.Record
		uploader, patientIdentity, hospitalIdentity string
		sizeBytes, seq                              int64
		rootAlgo, patientAlgo, hospitalAlgo, encAlg int16
		encVersion                                  int32
	)
	err := t.tx.QueryRow(ctx, `SELECT `+recordColumns+` FROM records WHERE address = $1`, addr(address)).Scan(
		fixedBytes(r.Address[:]), fixedBytes(r.Patient[:]), fixedBytes(r.Hospital[:]), &uploader,
		&r.CIDEnc, &r.MetaMIME, &r.MetaCID, &sizeBytes, fixedBytes(r.Digest[:]),
		&r.RootKey.Blob, &rootAlgo, &r.PatientKey.Blob, &patientAlgo, &r.HospitalKey.Blob, &hospitalAlgo,
		&r.KMSRef, &seq, &encVersion, &encAlg, &r.CreatedAt, &r.UpdatedAt, &patientIdentity, &hospitalIdentity,
		&r.Clinical.HospitalID, &r.Clinical.HospitalName, &r.Clinical.DoctorName, &r.Clinical.DoctorID,
		&r.Clinical.Diagnosis, &r.Clinical.Keywords, &r.Clinical.Description,
	)
	if err != nil {
		return model.Record{}, mapError(err)
	}

	r.Uploader = model.Identity(uploader)
	r.PatientIdentity = model.Identity(patientIdentity)
	r.HospitalIdentity = model.Identity(hospitalIdentity)
	r.SizeBytes = uint64(sizeBytes)
	r.Seq = uint64(seq)
	r.RootKey.Algo = model.WrapAlgo(rootAlgo)
	r.PatientKey.Algo = model.WrapAlgo(patientAlgo)
	r.HospitalKey.Algo = model.WrapAlgo(hospitalAlgo)
	r.EncVersion = uint16(encVersion)
	r.EncAlgo = model.EncAlgo(encAlg)
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.UpdatedAt.UTC()
	return r, nil
}

func (t *pgTx) CreateRecord(ctx context.Context, r model.Record) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)`,
		addr(r.Address), addr(r.Patient), addr(r.Hospital), string(r.Uploader),
		r.CIDEnc, r.MetaMIME, r.MetaCID, int64(r.SizeBytes), r.Digest[:],
		r.RootKey.Blob, int16(r.RootKey.Algo), r.PatientKey.Blob, int16(r.PatientKey.Algo),
		r.HospitalKey.Blob, int16(r.HospitalKey.Algo),
		r.KMSRef, int64(r.Seq), int32(r.EncVersion), int16(r.EncAlgo), r.CreatedAt, r.UpdatedAt,
		string(r.PatientIdentity), string(r.HospitalIdentity),
		r.Clinical.HospitalID, r.Clinical.HospitalName, r.Clinical.DoctorName, r.Clinical.DoctorID,
		r.Clinical.Diagnosis, r.Clinical.Keywords, r.Clinical.Description,
	)
	return mapError(err)
}

func (t *pgTx) AppendEvent(ctx context.Context, ev model.Event) error {
	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", ev.Type, err)
	}
	_, err = t.tx.Exec(ctx, `
		INSERT INTO ledger_events (id, type, at, payload)
		VALUES ($1, $2, $3, $4)`,
		ev.ID, string(ev.Type), ev.At, payload,
	)
	return mapError(err)
}

// utc drops the session time zone pgx attaches to scanned timestamps.
func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}

func addr(a model.Address) []byte {
	return a[:]
}
